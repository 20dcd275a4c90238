package server

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck answers the gateway's startup probe. Reachability is the whole
// contract; the body is informational.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": s.config.StoreEngine,
	})
}

// fallbackShell is served when no shell file is configured or present. Kept
// deliberately minimal; real deployments point SHELL_PATH at the built
// frontend.
const fallbackShell = `<!doctype html>
<html>
<head><title>Retrospace</title></head>
<body><h1>Retrospace data service</h1><p>API under /api</p></body>
</html>`

// ServeShell handles every non-API path by serving the application shell, so
// client-side routes resolve after a hard refresh.
func (s *Server) ServeShell(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if s.config.ShellPath != "" {
		if _, err := os.Stat(s.config.ShellPath); err == nil {
			return c.SendFile(s.config.ShellPath)
		}
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fallbackShell)
}
