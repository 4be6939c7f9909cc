package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateRenderer liga um registro enriquecido a um template HTML,
// embutindo a logo como data URI e o CSS da página antes de </head>.
type TemplateRenderer struct {
	TemplatesDir string
	PublicDir    string

	logoOnce sync.Once
	logoSrc  template.URL
}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{TemplatesDir: "templates", PublicDir: "public"}
}

// logoDataURI lê a logo uma única vez por processo; os bytes não mudam
// entre requisições. Logo ausente vira alerta, não erro: o documento sai
// sem a imagem. O retorno é template.URL para o data URI não ser filtrado
// pelo html/template.
func (r *TemplateRenderer) logoDataURI() template.URL {
	r.logoOnce.Do(func() {
		caminho := filepath.Join(r.PublicDir, "images", "logo.png")
		dados, err := os.ReadFile(caminho)
		if err != nil {
			log.Printf("[Alerta] Logo não encontrada em %s: %v", caminho, err)
			return
		}
		r.logoSrc = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(dados))
	})
	return r.logoSrc
}

// Renderizar compila o template nomeado, aplica os dados e injeta o CSS
// indicado. Falha de compilação ou de binding é erro de programação: sobe
// como ErrRenderFalhou, sem retentativa.
func (r *TemplateRenderer) Renderizar(nomeTemplate, nomeCSS string, dados any) (string, error) {
	caminho := filepath.Join(r.TemplatesDir, nomeTemplate)
	tpl, err := template.ParseFiles(caminho)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFalhou, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, dados); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFalhou, err)
	}

	html := buf.String()
	if nomeCSS != "" {
		css, err := os.ReadFile(filepath.Join(r.PublicDir, nomeCSS))
		if err != nil {
			return "", fmt.Errorf("%w: css %s: %v", ErrRenderFalhou, nomeCSS, err)
		}
		html = strings.Replace(html, "</head>", "<style>"+string(css)+"</style></head>", 1)
	}
	return html, nil
}
