package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/danmuck/labkit/internal/charts"
	"github.com/danmuck/labkit/internal/demo"
	"github.com/danmuck/labkit/internal/pricing"
	"github.com/danmuck/labkit/internal/report"
	"github.com/danmuck/labkit/internal/textproc"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type transformRequest struct {
	Lines []string `json:"lines"`
}

type transformResponse struct {
	Lines []string `json:"lines"`
	Count int      `json:"count"`
}

type discountResponse struct {
	pricing.Quote
	Message string `json:"message"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": serviceName,
			"version": version,
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.GET("/tools", s.handleTools)
	v1.POST("/transform", s.handleTransform)
	v1.GET("/discount", s.handleDiscount)
	v1.GET("/iris/summary", s.handleIrisSummary)
	v1.GET("/iris/figure.png", s.handleIrisFigure)
	v1.GET("/demo", s.handleDemo)
}

func (s *Server) handleTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.tools.All()})
}

func (s *Server) handleTransform(c *gin.Context) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lines := textproc.Transform(req.Lines)
	c.JSON(http.StatusOK, transformResponse{Lines: lines, Count: len(lines)})
}

func (s *Server) handleDiscount(c *gin.Context) {
	q, err := pricing.ParseQuote(c.Query("price"), c.Query("percent"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pricing.InvalidInputMessage})
		return
	}
	c.JSON(http.StatusOK, discountResponse{Quote: q, Message: q.Message()})
}

func (s *Server) handleIrisSummary(c *gin.Context) {
	frame, err := s.iris()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report.Summarize(frame))
}

func (s *Server) handleIrisFigure(c *gin.Context) {
	frame, err := s.iris()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	fig, err := charts.NewFigure(frame, s.cfg.Chart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := fig.WritePNG(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleDemo(c *gin.Context) {
	var buf bytes.Buffer
	demo.Run(&buf)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
