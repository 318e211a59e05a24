package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/frisklabs/frisk/api"
)

func (s *Server) listUsers(gctx *gin.Context) {
	gctx.PureJSON(http.StatusOK, s.data.users)
}

func (s *Server) listQueues(gctx *gin.Context) {
	size, token := pageParams(gctx)

	page, err := paginate(s.data.queues, size, token)
	if err != nil {
		writeError(gctx, http.StatusBadRequest, err.Error())
		return
	}

	gctx.PureJSON(http.StatusOK, page)
}

func (s *Server) getQueue(gctx *gin.Context) {
	queueID := gctx.Param("queueId")
	for _, q := range s.data.queues {
		if q.QueueID == queueID {
			gctx.PureJSON(http.StatusOK, q)
			return
		}
	}

	writeError(gctx, http.StatusNotFound, "no such queue")
}

func (s *Server) listQueueItems(gctx *gin.Context) {
	queueID := gctx.Param("queueId")
	items, ok := s.data.itemsByQ[queueID]
	if !ok {
		writeError(gctx, http.StatusNotFound, "no such queue")
		return
	}

	size, token := pageParams(gctx)
	page, err := paginate(items, size, token)
	if err != nil {
		writeError(gctx, http.StatusBadRequest, err.Error())
		return
	}

	gctx.PureJSON(http.StatusOK, page)
}

func (s *Server) searchItems(gctx *gin.Context) {
	queueID := gctx.Query("queueId")
	analystID := gctx.Query("analystId")

	// Queues are walked in their seeded order so cursors stay stable
	// across requests.
	var matched []api.RawItem
	for _, q := range s.data.queues {
		if queueID != "" && q.QueueID != queueID {
			continue
		}
		for _, item := range s.data.itemsByQ[q.QueueID] {
			if analystID != "" && !itemTouchedBy(item, analystID) {
				continue
			}
			matched = append(matched, item)
		}
	}

	size, token := pageParams(gctx)
	page, err := paginate(matched, size, token)
	if err != nil {
		writeError(gctx, http.StatusBadRequest, err.Error())
		return
	}

	gctx.PureJSON(http.StatusOK, page)
}

func itemTouchedBy(item api.RawItem, analystID string) bool {
	if item.LockedBy == analystID {
		return true
	}
	if item.Decision != nil && item.Decision.UserID == analystID {
		return true
	}

	return false
}

var analysisFields = map[string]bool{
	"creditCard":      true,
	"email":           true,
	"billingAddress":  true,
	"shippingAddress": true,
	"deviceId":        true,
}

func (s *Server) linkAnalysis(gctx *gin.Context) {
	if !analysisFields[gctx.Param("field")] {
		writeError(gctx, http.StatusBadRequest, "unknown analysis field")
		return
	}

	linked, ok := s.data.linked[gctx.Param("itemId")]
	if !ok {
		writeError(gctx, http.StatusNotFound, "no such item")
		return
	}

	size, token := pageParams(gctx)
	page, err := paginate(linked, size, token)
	if err != nil {
		writeError(gctx, http.StatusBadRequest, err.Error())
		return
	}

	gctx.PureJSON(http.StatusOK, page)
}

func (s *Server) queueDashboard(gctx *gin.Context) {
	gctx.PureJSON(http.StatusOK, s.data.queuePerf)
}

func (s *Server) analystDashboard(gctx *gin.Context) {
	gctx.PureJSON(http.StatusOK, s.data.analystPerf)
}

func (s *Server) dictionary(gctx *gin.Context) {
	values, ok := s.data.dictionary[gctx.Param("category")]
	if !ok {
		writeError(gctx, http.StatusNotFound, "no such category")
		return
	}

	q := strings.ToLower(gctx.Query("q"))
	limit := 10

	var out []api.RawDictionarySuggestion
	for _, v := range values {
		if q != "" && !strings.Contains(strings.ToLower(v), q) {
			continue
		}
		out = append(out, api.RawDictionarySuggestion{
			Category: gctx.Param("category"),
			Value:    v,
		})
		if len(out) >= limit {
			break
		}
	}

	gctx.PureJSON(http.StatusOK, out)
}
