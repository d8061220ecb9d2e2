package modules

import (
	"github.com/gin-gonic/gin"

	web "github.com/bloodlink-bd/bloodlink-web/internal/interface/web"
)

// PublicModule wires the screens that need no session: the landing page,
// the open request board, and donor search.
type PublicModule struct {
	Handler *web.PublicHandler
}

func NewPublicModule(h *web.PublicHandler) *PublicModule {
	return &PublicModule{Handler: h}
}

func (m *PublicModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/requests", m.Handler.Pending)
	rg.GET("/search-donors", m.Handler.SearchDonors)
}
