package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hallplan/hallplan/internal/config"
	"github.com/hallplan/hallplan/internal/csvio"
	"github.com/hallplan/hallplan/internal/scheduler"
	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

type server struct {
	st *store.Store
}

func setupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	gin.SetMode(cfg.Mode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s := &server{st: st}
	r.GET("/rooms", s.handleListRooms)
	r.GET("/rooms/:floor/:room", s.handleGetRoom)
	r.GET("/sessions", s.handleListSessions)
	r.POST("/sessions", s.handleAddSession)
	r.PUT("/sessions/:id", s.handleEditSession)
	r.DELETE("/sessions/:id", s.handleRemoveSession)
	r.POST("/allocate", s.handleAllocate)
	r.POST("/reset", s.handleReset)
	r.GET("/timetable", s.handleTimetable)
	return r
}

type roomIDView struct {
	Floor int `json:"floor"`
	Index int `json:"index"`
}

type occupancyView struct {
	Slot    string `json:"slot"`
	Session string `json:"session"`
}

type roomView struct {
	Floor    int             `json:"floor"`
	Index    int             `json:"index"`
	Capacity int             `json:"capacity"`
	Occupied []occupancyView `json:"occupied"`
}

type sessionView struct {
	ID      string      `json:"id"`
	Subject string      `json:"subject"`
	Group   string      `json:"group"`
	Slot    string      `json:"slot"`
	Room    *roomIDView `json:"room"`
	Pinned  bool        `json:"pinned"`
}

type sessionRequest struct {
	Subject string `json:"subject"`
	Group   string `json:"group"`
	Slot    string `json:"slot"`
	Floor   *int   `json:"floor"`
	Room    *int   `json:"room"`
}

func viewRoom(r *model.Room) roomView {
	v := roomView{
		Floor:    r.ID.Floor,
		Index:    r.ID.Index,
		Capacity: r.Capacity,
		Occupied: []occupancyView{},
	}
	for _, slot := range r.OccupiedSlots() {
		occupant, _ := r.Occupant(slot)
		v.Occupied = append(v.Occupied, occupancyView{Slot: string(slot), Session: string(occupant)})
	}
	return v
}

func viewSession(s *model.Session) sessionView {
	v := sessionView{
		ID:      string(s.ID),
		Subject: s.Subject,
		Group:   s.Group,
		Slot:    string(s.Slot),
		Pinned:  s.Pinned,
	}
	if s.Room != nil {
		v.Room = &roomIDView{Floor: s.Room.ID.Floor, Index: s.Room.ID.Index}
	}
	return v
}

func (s *server) handleListRooms(ctx *gin.Context) {
	rooms := []roomView{}
	for _, r := range s.st.Registry().Rooms() {
		rooms = append(rooms, viewRoom(r))
	}
	ctx.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (s *server) handleGetRoom(ctx *gin.Context) {
	floor, err1 := strconv.Atoi(ctx.Param("floor"))
	index, err2 := strconv.Atoi(ctx.Param("room"))
	if err1 != nil || err2 != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "floor and room must be integers"})
		return
	}
	room := s.st.Registry().RoomAt(floor, index)
	if room == nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, viewRoom(room))
}

func (s *server) handleListSessions(ctx *gin.Context) {
	sessions := []sessionView{}
	for _, sess := range s.st.Sessions() {
		sessions = append(sessions, viewSession(sess))
	}
	ctx.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *server) handleAddSession(ctx *gin.Context) {
	var req sessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, ok := s.resolveRoom(ctx, req)
	if !ok {
		return
	}
	sess, err := s.st.Add(req.Subject, req.Group, model.Slot(req.Slot), room)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, viewSession(sess))
}

func (s *server) handleEditSession(ctx *gin.Context) {
	var req sessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, ok := s.resolveRoom(ctx, req)
	if !ok {
		return
	}
	sess, err := s.st.Edit(model.SessionID(ctx.Param("id")), req.Subject, req.Group, model.Slot(req.Slot), room)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, viewSession(sess))
}

func (s *server) handleRemoveSession(ctx *gin.Context) {
	s.st.Remove(model.SessionID(ctx.Param("id")))
	ctx.Status(http.StatusNoContent)
}

func (s *server) handleAllocate(ctx *gin.Context) {
	res, err := scheduler.Allocate(s.st)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	type entryView struct {
		Session  string     `json:"session"`
		Subject  string     `json:"subject"`
		Slot     string     `json:"slot"`
		Room     roomIDView `json:"room"`
		Sequence int        `json:"sequence"`
	}
	type itineraryView struct {
		Group   string      `json:"group"`
		Entries []entryView `json:"entries"`
	}
	type conflictView struct {
		Session string `json:"session"`
		Reason  string `json:"reason"`
	}

	itineraries := []itineraryView{}
	for _, it := range res.Itineraries {
		iv := itineraryView{Group: it.Group, Entries: []entryView{}}
		for _, e := range it.Entries {
			iv.Entries = append(iv.Entries, entryView{
				Session:  string(e.Session.ID),
				Subject:  e.Session.Subject,
				Slot:     string(e.Session.Slot),
				Room:     roomIDView{Floor: e.Room.Floor, Index: e.Room.Index},
				Sequence: e.Sequence,
			})
		}
		itineraries = append(itineraries, iv)
	}
	conflicts := []conflictView{}
	for _, c := range res.Conflicts {
		conflicts = append(conflicts, conflictView{Session: string(c.Session.ID), Reason: c.Err.Error()})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"assigned":    res.Assigned(),
		"skipped":     res.Skipped(),
		"itineraries": itineraries,
		"conflicts":   conflicts,
	})
}

func (s *server) handleReset(ctx *gin.Context) {
	s.st.Reset()
	ctx.Status(http.StatusNoContent)
}

func (s *server) handleTimetable(ctx *gin.Context) {
	out, err := csvio.ExportTimetableString(s.st)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "text/csv", []byte(out))
}

// resolveRoom turns the optional floor/room pair of a request into a
// registry room. Writes the error response itself on bad input.
func (s *server) resolveRoom(ctx *gin.Context, req sessionRequest) (*model.Room, bool) {
	if req.Floor == nil && req.Room == nil {
		return nil, true
	}
	if req.Floor == nil || req.Room == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "floor and room must be given together"})
		return nil, false
	}
	room := s.st.Registry().RoomAt(*req.Floor, *req.Room)
	if room == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no such room"})
		return nil, false
	}
	return room, true
}

func statusFor(err error) int {
	var dup *model.DuplicateSlotError
	var conflict *model.RoomConflictError
	switch {
	case errors.As(err, &dup), errors.As(err, &conflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmptySchedule):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
