// Package server exposes the variant registry over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/GardenTools/CrcEngine/pkg/crc"
)

type Variant struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Width   uint     `json:"width"`
	Poly    string   `json:"poly"`
	Init    string   `json:"init"`
	RefIn   bool     `json:"ref_in"`
	RefOut  bool     `json:"ref_out"`
	XorOut  string   `json:"xor_out"`
	Check   string   `json:"check"`
}

type Result struct {
	Variant string `json:"variant"`
	Width   uint   `json:"width"`
	CRC     uint64 `json:"crc"`
	Hex     string `json:"hex"`
}

// Hex formats v with one digit per started nibble of width.
func Hex(v uint64, width uint) string {
	return fmt.Sprintf("%0*x", int(width+3)/4, v)
}

func newVariant(e crc.Entry) Variant {
	p := e.Params
	return Variant{
		Name:    p.Name,
		Aliases: e.Aliases,
		Width:   p.Width,
		Poly:    "0x" + Hex(p.Poly, p.Width),
		Init:    "0x" + Hex(p.Init, p.Width),
		RefIn:   p.RefIn,
		RefOut:  p.RefOut,
		XorOut:  "0x" + Hex(p.XorOut, p.Width),
		Check:   "0x" + Hex(p.Check, p.Width),
	}
}

// MaxAllowed lets at most n requests run at once; the rest wait.
func MaxAllowed(n int) gin.HandlerFunc {
	sem := make(chan struct{}, n)
	acquire := func() { sem <- struct{}{} }
	release := func() { <-sem }
	return func(c *gin.Context) {
		acquire()
		defer release()
		c.Next()
	}
}

func logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("request")
	}
}

type handler struct {
	registry *crc.Registry
}

// New returns the router for registry. maxConcurrent below 1 disables the
// limit.
func New(registry *crc.Registry, maxConcurrent int) *gin.Engine {
	r := gin.New()
	// names such as CRC-16/MODBUS arrive as CRC-16%2FMODBUS
	r.UseRawPath = true
	r.UnescapePathValues = true

	r.Use(gin.Recovery(), logger())
	if maxConcurrent > 0 {
		r.Use(MaxAllowed(maxConcurrent))
	}

	h := &handler{registry: registry}
	api := r.Group("/api")
	api.GET("/engines", h.engines)
	api.GET("/variants", h.variants)
	api.GET("/variants/:name", h.variant)
	api.POST("/crc/:name", h.compute)
	return r
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *handler) engines(c *gin.Context) {
	c.JSON(http.StatusOK, crc.Engines())
}

func (h *handler) variants(c *gin.Context) {
	entries := h.registry.Entries()
	variants := make([]Variant, len(entries))
	for i, e := range entries {
		variants[i] = newVariant(e)
	}
	c.JSON(http.StatusOK, variants)
}

func (h *handler) lookup(c *gin.Context) (crc.Entry, bool) {
	e, err := h.registry.LookupEntry(c.Param("name"))
	if err != nil {
		fail(c, http.StatusNotFound, err)
		return crc.Entry{}, false
	}
	return e, true
}

func (h *handler) variant(c *gin.Context) {
	e, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newVariant(e))
}

func (h *handler) compute(c *gin.Context) {
	e, ok := h.lookup(c)
	if !ok {
		return
	}
	engine, err := crc.ParseEngine(c.Query("engine"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	calc, err := crc.NewCRC(e.Params, engine)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, crc.ErrUnknownEngine) {
			status = http.StatusBadRequest
		}
		fail(c, status, err)
		return
	}
	data, err := c.GetRawData()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	sum := calc.Checksum(data)
	c.JSON(http.StatusOK, Result{
		Variant: e.Params.Name,
		Width:   e.Params.Width,
		CRC:     sum,
		Hex:     Hex(sum, e.Params.Width),
	})
}
