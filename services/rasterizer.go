package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// Geometria A4 em polegadas, exigida pelo protocolo de impressão.
	larguraA4Pol = 8.27
	alturaA4Pol  = 11.69

	polegadaPorMm = 1.0 / 25.4

	// Teto de espera do carregamento do conteúdo.
	timeoutConteudoPadrao = 60 * time.Second
)

// OpcoesPagina controla as margens do PDF. Zero significa sem margem,
// igual aos documentos com @page próprio no CSS.
type OpcoesPagina struct {
	MargemMm float64
}

// Rasterizer converte HTML pronto em PDF via navegador headless. Cada
// chamada sobe uma instância isolada do navegador e a derruba
// incondicionalmente ao final, inclusive no caminho de erro.
type Rasterizer struct {
	Timeout time.Duration
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{Timeout: timeoutConteudoPadrao}
}

// GerarPDF carrega o HTML numa página nova, espera a rede aquietar e as
// imagens terminarem de carregar, e emite o PDF em A4 com fundo impresso.
func (r *Rasterizer) GerarPDF(ctx context.Context, html string, opts OpcoesPagina) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = timeoutConteudoPadrao
	}

	lanc := launcher.New().Headless(true).NoSandbox(true)
	urlControle, err := lanc.Launch()
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar navegador: %w", err)
	}
	// O processo do navegador morre sempre, mesmo quando a emissão falha.
	defer lanc.Cleanup()
	defer lanc.Kill()

	navegador := rod.New().ControlURL(urlControle).Context(ctx)
	if err := navegador.Connect(); err != nil {
		return nil, fmt.Errorf("falha ao conectar ao navegador: %w", err)
	}
	defer navegador.Close()

	pagina, err := navegador.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir página: %w", err)
	}
	pagina = pagina.Timeout(timeout)

	// Navegar por data URL faz o waitLoad cobrir também imagens externas
	// referenciadas no markup.
	destino := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))
	if err := pagina.Navigate(destino); err != nil {
		return nil, erroRasterizacao("falha ao carregar conteúdo", err)
	}
	if err := pagina.WaitLoad(); err != nil {
		return nil, erroRasterizacao("tempo de carregamento excedido", err)
	}

	// Espera explícita pelas tags <img>; load não garante imagens lentas.
	_, err = pagina.Eval(`() => Promise.all(
		Array.from(document.images).map(img => img.complete
			? Promise.resolve()
			: new Promise(res => { img.onload = res; img.onerror = res; })))`)
	if err != nil {
		return nil, erroRasterizacao("falha na espera das imagens", err)
	}

	margem := opts.MargemMm * polegadaPorMm
	leitor, err := pagina.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        f64(larguraA4Pol),
		PaperHeight:       f64(alturaA4Pol),
		MarginTop:         f64(margem),
		MarginBottom:      f64(margem),
		MarginLeft:        f64(margem),
		MarginRight:       f64(margem),
	})
	if err != nil {
		return nil, erroRasterizacao("falha ao emitir PDF", err)
	}

	pdf, err := io.ReadAll(leitor)
	if err != nil {
		return nil, erroRasterizacao("falha ao ler PDF emitido", err)
	}
	return pdf, nil
}

func erroRasterizacao(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeoutRasterizacao, msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func f64(v float64) *float64 { return &v }
