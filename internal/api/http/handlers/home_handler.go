package handlers

import "github.com/gofiber/fiber/v2"

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Hotel Management API</title>
</head>
<body>
  <h1>Hotel Management API</h1>
  <p>The server is running and ready to handle requests.</p>
  <h3>Available Endpoints</h3>
  <ul>
    <li><code>GET /api/health</code> - Health check</li>
    <li><code>GET /api/users</code> - Get all users</li>
    <li><code>GET /api/hotels</code> - Get all hotels</li>
    <li><code>GET /api/reservations</code> - Get all reservations</li>
  </ul>
</body>
</html>`

// HomeHandler serves the static informational page.
type HomeHandler struct{}

// NewHomeHandler returns a new handler instance.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index GET /.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(homePage)
}
