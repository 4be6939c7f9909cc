package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// idadeMaximaRascunho define quanto tempo um diretório de rascunho pode
// sobreviver antes de ser considerado abandonado (processo morto no meio
// de uma unificação, por exemplo).
const idadeMaximaRascunho = 24 * time.Hour

// CleanupScratchDirs remove diretórios temporários de unificação de PDF
// que ficaram para trás.
func CleanupScratchDirs() {
	raiz := os.TempDir()

	entradas, err := os.ReadDir(raiz)
	if err != nil {
		log.Printf("Erro ao listar diretório temporário: %v", err)
		return
	}

	removidos := 0
	for _, entrada := range entradas {
		if !entrada.IsDir() || !strings.HasPrefix(entrada.Name(), "pdf-merge-") {
			continue
		}

		info, err := entrada.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < idadeMaximaRascunho {
			continue
		}

		caminho := filepath.Join(raiz, entrada.Name())
		if err := os.RemoveAll(caminho); err != nil {
			log.Printf("Erro ao remover rascunho %s: %v", caminho, err)
			continue
		}
		removidos++
	}

	if removidos > 0 {
		log.Printf("Removidos %d diretórios de rascunho abandonados", removidos)
	}
}

// StartCleanupJob agenda a limpeza periódica dos rascunhos.
func StartCleanupJob() {
	// Roda a limpeza uma vez na inicialização
	CleanupScratchDirs()

	ticker := time.NewTicker(24 * time.Hour)

	go func() {
		defer ticker.Stop()
		for range ticker.C {
			CleanupScratchDirs()
		}
	}()

	log.Println("Cleanup job iniciado (roda a cada 24 horas)")
}
