package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/lookup"
	"customer-lookup/internal/query"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionIDKey     = "sid"
	lookupSessionKey = "lookupSession"
)

// sessionMiddleware binds the browser's cookie session to a lookup.Session.
func sessionMiddleware(store *lookup.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		sid, _ := sess.Get(sessionIDKey).(string)
		if sid == "" {
			sid = uuid.NewString()
			sess.Set(sessionIDKey, sid)
			if err := sess.Save(); err != nil {
				_ = c.Error(err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}
		c.Set(lookupSessionKey, store.GetOrCreate(sid))
		c.Next()
	}
}

func lookupSession(c *gin.Context) *lookup.Session {
	return c.MustGet(lookupSessionKey).(*lookup.Session)
}

type lookupUI struct {
	registry *fields.Registry
	keys     []string
	logger   *log.Logger
}

func newLookupUI(reg *fields.Registry, logger *log.Logger) *lookupUI {
	var keys []string
	for _, f := range reg.SearchFields() {
		keys = append(keys, f.Key)
	}
	return &lookupUI{registry: reg, keys: keys, logger: logger}
}

func (ui *lookupUI) index(c *gin.Context) {
	ui.render(c, http.StatusOK, lookupSession(c).Snapshot(), "")
}

func (ui *lookupUI) search(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	sess := lookupSession(c)
	sess.ReplaceCriteria(query.FromValues(c.Request.PostForm, ui.keys))

	// The directory client's timeout bounds the search; a closed browser tab does not cancel it.
	err := sess.Search(context.WithoutCancel(c.Request.Context()))
	switch {
	case errors.Is(err, lookup.ErrSearchInFlight):
		ui.render(c, http.StatusConflict, sess.Snapshot(), "A search is already running.")
		return
	case errors.Is(err, lookup.ErrSuperseded):
		ui.logger.Printf("lookup ui: search superseded by reset")
	case err != nil:
		ui.logger.Printf("lookup ui: search failed err=%v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (ui *lookupUI) reset(c *gin.Context) {
	lookupSession(c).Reset()
	c.Redirect(http.StatusSeeOther, "/")
}

func (ui *lookupUI) selectCustomer(c *gin.Context) {
	sess := lookupSession(c)
	err := sess.Select(c.Param("id"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ui.render(c, http.StatusNotFound, sess.Snapshot(), "That customer is not in the current results.")
		return
	case errors.Is(err, lookup.ErrNoResults):
		ui.render(c, http.StatusConflict, sess.Snapshot(), "Run a search before opening a customer.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (ui *lookupUI) closeDetail(c *gin.Context) {
	lookupSession(c).CloseDetail()
	c.Redirect(http.StatusSeeOther, "/")
}

func (ui *lookupUI) render(c *gin.Context, status int, v lookup.View, notice string) {
	c.HTML(status, "index.tmpl", buildPage(ui.registry, v, notice))
}
