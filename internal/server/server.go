package server

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"

	"github.com/gamma-omg/stockdash/internal/chart"
	"github.com/gamma-omg/stockdash/internal/dashboard"
	"github.com/gofiber/fiber/v2"
)

//go:embed templates/index.html
var templates embed.FS

// Server is the web shell: one page, one form, one refresh path.
type Server struct {
	log  *slog.Logger
	dash *dashboard.Dashboard
	app  *fiber.App
	tmpl *template.Template
}

func New(log *slog.Logger, dash *dashboard.Dashboard) *Server {
	s := &Server{
		log:  log,
		dash: dash,
		tmpl: template.Must(template.ParseFS(templates, "templates/index.html")),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "stockdash",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Error("request failed", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString("internal error")
		},
	})
	s.app.Get("/", s.handleIndex)

	return s
}

func (s *Server) Listen(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	s.log.Info("dashboard listening", "addr", addr)
	return s.app.Listen(addr)
}

type pageView struct {
	Symbol     string
	Horizon    string
	Indicator  *chart.Indicator
	Price      string
	Delta      string
	History    template.URL
	Projection template.URL
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	defaults := s.dash.Defaults()
	symbol := c.Query("symbol", defaults.Symbol)
	horizon := c.Query("days", strconv.Itoa(defaults.Horizon))

	panels := s.dash.Refresh(c.UserContext(), symbol, horizon)
	view := s.buildView(symbol, horizon, panels)

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (s *Server) buildView(symbol, horizon string, p dashboard.Panels) pageView {
	var history, projection pngChart
	if p.History != nil {
		history = p.History
	}
	if p.Projection != nil {
		projection = p.Projection
	}

	view := pageView{
		Symbol:     symbol,
		Horizon:    horizon,
		History:    s.renderPng(history),
		Projection: s.renderPng(projection),
	}

	if p.Indicator != nil {
		view.Indicator = p.Indicator
		view.Price = "$" + p.Indicator.Current.StringFixed(2)

		delta := p.Indicator.Delta()
		if delta.IsNegative() {
			view.Delta = delta.StringFixed(2)
		} else {
			view.Delta = "+" + delta.StringFixed(2)
		}
	}

	return view
}

type pngChart interface {
	Render(w, h int) ([]byte, error)
}

// renderPng draws a panel to an inline base64 png data uri, degrading to the
// blank placeholder when the panel is missing or fails to draw.
func (s *Server) renderPng(c pngChart) template.URL {
	var png []byte
	var err error

	if c != nil {
		png, err = c.Render(chart.DefaultWidth, chart.DefaultHeight)
	}

	if err != nil {
		s.log.Error("failed to render chart", "error", err)
		png = nil
	}

	if png == nil {
		if png, err = chart.Blank(chart.DefaultWidth, chart.DefaultHeight); err != nil {
			s.log.Error("failed to render blank chart", "error", err)
			return ""
		}
	}

	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
