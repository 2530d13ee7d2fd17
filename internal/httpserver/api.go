package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"customer-lookup/internal/domain"
	"customer-lookup/internal/fields"
	"customer-lookup/internal/lookup"
	"customer-lookup/internal/query"
	"github.com/gin-gonic/gin"
)

type searchFieldResponse struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	RenderOrder int      `json:"renderOrder"`
	QueryParam  string   `json:"queryParam"`
	UIType      string   `json:"uiType"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type displayFieldResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	RenderOrder int    `json:"renderOrder"`
	Kind        string `json:"kind"`
}

type fieldsResponse struct {
	SearchFields  []searchFieldResponse  `json:"searchFields"`
	DisplayFields []displayFieldResponse `json:"displayFields"`
}

type searchResponse struct {
	Query     string            `json:"query"`
	Customers []domain.Customer `json:"customers"`
	Error     string            `json:"error,omitempty"`
}

func fieldsHandler(reg *fields.Registry) gin.HandlerFunc {
	resp := fieldsResponse{
		SearchFields:  []searchFieldResponse{},
		DisplayFields: []displayFieldResponse{},
	}
	for _, f := range reg.SearchFields() {
		out := searchFieldResponse{
			Key:         f.Key,
			Label:       f.Label,
			RenderOrder: f.RenderOrder,
			QueryParam:  f.QueryParam,
			UIType:      f.Widget.Kind(),
		}
		switch w := f.Widget.(type) {
		case fields.TextInput:
			out.Placeholder = w.Placeholder
		case fields.SelectInput:
			out.Options = w.Options
		}
		resp.SearchFields = append(resp.SearchFields, out)
	}
	for _, f := range reg.DisplayFields() {
		resp.DisplayFields = append(resp.DisplayFields, displayFieldResponse{
			Key:         f.Key,
			Label:       f.Label,
			RenderOrder: f.RenderOrder,
			Kind:        f.Kind.String(),
		})
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}

// apiSearchHandler runs one stateless search. The body is a flat JSON object of criteria;
// its key order decides which name wins the shared q parameter.
func apiSearchHandler(searcher *lookup.Searcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "read body"})
			return
		}
		var criteria query.Criteria
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &criteria); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		res, err := searcher.Run(c.Request.Context(), criteria)
		if err != nil {
			c.JSON(http.StatusBadGateway, searchResponse{
				Query:     res.Query,
				Customers: []domain.Customer{},
				Error:     lookup.ErrorMessage(err),
			})
			return
		}
		c.JSON(http.StatusOK, searchResponse{Query: res.Query, Customers: res.Customers})
	}
}
