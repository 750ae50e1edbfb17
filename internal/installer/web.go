package installer

func nginxInstalled(_ *Context) bool {
	return commandExists("nginx")
}

// applyNginx installs Nginx and enables it as a systemd service.
func applyNginx(_ *Context) error {
	if err := aptInstall("nginx"); err != nil {
		return err
	}
	return systemctlEnableNow("nginx")
}

func certbotInstalled(_ *Context) bool {
	return commandExists("certbot")
}

// applyCertbot installs Certbot with the Nginx plugin. Obtaining an actual
// certificate needs a domain pointed at this server, so that step is left to
// the user: certbot --nginx -d example.com
func applyCertbot(_ *Context) error {
	return aptInstall("certbot", "python3-certbot-nginx")
}
