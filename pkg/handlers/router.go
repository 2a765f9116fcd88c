package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"regexp"
	"time"

	"marinelle/pkg/models"
	"marinelle/pkg/services"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures NewRouter.
type Options struct {
	Site       models.Site
	Lang       string
	BackendURL string
	SSL        bool

	// NewLoader overrides how a page view gets its content loader.
	NewLoader func() *services.ContentLoader
	Now       func() time.Time
}

func NewRouter(opts Options) *gin.Engine {
	tr := services.NewTranslator(opts.Lang)

	h := &Handler{
		Site:       opts.Site,
		Translator: tr,
		NewLoader:  opts.NewLoader,
		Now:        opts.Now,
	}
	if h.NewLoader == nil {
		backend := opts.BackendURL
		h.NewLoader = func() *services.ContentLoader {
			return services.NewContentLoader(backend)
		}
	}
	if h.Now == nil {
		h.Now = time.Now
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if opts.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	r.Use(secure.New(secureConfig))

	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs(tr)).ParseFS(templateFS, "templates/*.html")))

	r.GET("/", h.HomePage)
	r.GET("/api/content", h.Content)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return r
}

var phoneChars = regexp.MustCompile(`[^0-9+]`)

func templateFuncs(tr services.Translator) template.FuncMap {
	return template.FuncMap{
		"t": func(key string, args ...interface{}) string {
			return tr.T(key, args...)
		},
		// tel: is not in html/template's safe scheme list.
		"tel": func(phone string) template.URL {
			return template.URL("tel:" + phoneChars.ReplaceAllString(phone, ""))
		},
		"mapURL": services.MapEmbedURL,
	}
}
