package routes

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "shopcart_back_end/docs"
)

const (
	DocsPath  = "/api-docs"
	DocsTitle = "購物車 API 文檔"
)

// Page d'accueil de la doc : ressources en chemin absolu pour répondre directement sous /api-docs.
var docsIndex = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="zh-Hant">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" type="text/css" href="{{.Base}}/swagger-ui.css">
  <link rel="icon" type="image/png" href="{{.Base}}/favicon-32x32.png" sizes="32x32">
  <style>
    html { box-sizing: border-box; overflow-y: scroll; }
    body { margin: 0; background: #fafafa; }
    .swagger-ui .topbar { display: none }
  </style>
</head>
<body>
<div id="swagger-ui"></div>
<script src="{{.Base}}/swagger-ui-bundle.js"></script>
<script src="{{.Base}}/swagger-ui-standalone-preset.js"></script>
<script>
window.onload = function() {
  window.ui = SwaggerUIBundle({
    url: {{.DocURL}},
    dom_id: '#swagger-ui',
    deepLinking: true,
    docExpansion: 'list',
    persistAuthorization: true,
    presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
    plugins: [SwaggerUIBundle.plugins.DownloadUrl],
    layout: 'StandaloneLayout'
  });
};
</script>
</body>
</html>
`))

// RegisterDocs sert l'interface Swagger sous /api-docs, ses ressources et le document brut
// sous /api-docs/doc.json.
func RegisterDocs(r *gin.Engine) {
	var page bytes.Buffer
	if err := docsIndex.Execute(&page, struct{ Title, Base, DocURL string }{
		Title:  DocsTitle,
		Base:   DocsPath,
		DocURL: DocsPath + "/doc.json",
	}); err != nil {
		panic(err)
	}
	index := page.Bytes()

	serveIndex := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	}

	r.GET(DocsPath, serveIndex)
	r.GET(DocsPath+"/", serveIndex)
	r.GET(DocsPath+"/:file", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.DocExpansion("list"),
		ginSwagger.PersistAuthorization(true),
	))
}
