package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/samdwyer/dungeonlayout/internal/rng"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// LayoutHandler handles layout endpoints
type LayoutHandler struct {
	generator *world.Generator
	shape     world.Shape
}

// NewLayoutHandler creates a LayoutHandler. shape is used when a request
// does not override rows or columns.
func NewLayoutHandler(generator *world.Generator, shape world.Shape) *LayoutHandler {
	return &LayoutHandler{generator: generator, shape: shape}
}

// AreaResponse describes one area of a layout.
type AreaResponse struct {
	Index   int     `json:"index"`
	Kind    string  `json:"kind"`
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	Top     int     `json:"top"`
	Left    int     `json:"left"`
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Room    *Bounds `json:"room,omitempty"`
	Anchor  [2]int  `json:"anchor"`
}

// Bounds is a rectangle in map cells.
type Bounds struct {
	Top     int `json:"top"`
	Left    int `json:"left"`
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// LinkResponse describes a joined pair of areas.
type LinkResponse struct {
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
}

// LayoutResponse is the structural description of a layout.
type LayoutResponse struct {
	ID          string         `json:"id"`
	Seed        uint64         `json:"seed"`
	Fingerprint string         `json:"fingerprint"`
	Shape       [2]int         `json:"shape"`
	Areas       []AreaResponse `json:"areas"`
	Links       []LinkResponse `json:"links"`
}

// GetLayout handles GET /api/layouts/{seed} - returns the text dump
func (h *LayoutHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	seed, dungeon, ok := h.generate(w, r)
	if !ok {
		return
	}

	etag := etagFor(dungeon)
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Layout-Seed", strconv.FormatUint(seed, 10))
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dungeon.Render() + "\n"))
}

// GetAreas handles GET /api/layouts/{seed}/areas - returns the area structure
func (h *LayoutHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	seed, dungeon, ok := h.generate(w, r)
	if !ok {
		return
	}

	w.Header().Set("ETag", etagFor(dungeon))
	respondJSON(w, http.StatusOK, describe(seed, dungeon))
}

// generate parses the request and builds its layout. It writes the error
// response and returns false when that fails.
func (h *LayoutHandler) generate(w http.ResponseWriter, r *http.Request) (uint64, *world.Dungeon, bool) {
	seed, err := strconv.ParseUint(chi.URLParam(r, "seed"), 0, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return 0, nil, false
	}

	shape, err := h.shapeFrom(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return 0, nil, false
	}

	dungeon, err := h.generator.Generate(r.Context(), rng.New(seed), shape.Rows, shape.Columns)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return 0, nil, false
	}
	return seed, dungeon, true
}

func (h *LayoutHandler) shapeFrom(r *http.Request) (world.Shape, error) {
	shape := h.shape
	query := r.URL.Query()
	if v := query.Get("rows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return shape, fmt.Errorf("invalid rows %q", v)
		}
		shape.Rows = n
	}
	if v := query.Get("columns"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return shape, fmt.Errorf("invalid columns %q", v)
		}
		shape.Columns = n
	}
	return shape, nil
}

// statusFor maps generation errors to response codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, world.ErrInvalidShape):
		return http.StatusBadRequest
	case errors.Is(err, world.ErrGenerationExhausted):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func etagFor(dungeon *world.Dungeon) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%016x", dungeon.Fingerprint()))
}

func describe(seed uint64, dungeon *world.Dungeon) LayoutResponse {
	resp := LayoutResponse{
		ID:          dungeon.ID().String(),
		Seed:        seed,
		Fingerprint: fmt.Sprintf("%016x", dungeon.Fingerprint()),
		Shape:       [2]int{dungeon.Shape.Rows, dungeon.Shape.Columns},
		Areas:       make([]AreaResponse, 0, len(dungeon.Areas)),
		Links:       make([]LinkResponse, 0, len(dungeon.Links)),
	}

	for _, a := range dungeon.Areas {
		anchor := a.Anchor()
		ar := AreaResponse{
			Index:   a.Index,
			Kind:    a.Kind.String(),
			Row:     a.Row,
			Col:     a.Col,
			Top:     int(a.Origin.Row),
			Left:    int(a.Origin.Col),
			Rows:    a.Rows,
			Columns: a.Columns,
			Anchor:  [2]int{int(anchor.Row), int(anchor.Col)},
		}
		if a.Kind == world.KindRoom {
			room := a.GlobalRoom()
			ar.Room = &Bounds{
				Top:     int(room.Origin.Row),
				Left:    int(room.Origin.Col),
				Rows:    room.Rows,
				Columns: room.Columns,
			}
		}
		resp.Areas = append(resp.Areas, ar)
	}

	for _, l := range dungeon.Links {
		resp.Links = append(resp.Links, LinkResponse{From: l.From, To: l.To, Direction: l.Dir.String()})
	}
	return resp
}
