package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embedded embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	templates       map[string]*template.Template
	defaultLanguage string
}

// NewService carrega os arquivos JSON de localesDir.
// Um diretório vazio usa as traduções embutidas no binário.
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		return NewEmbeddedService(defaultLang)
	}
	return newService(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService usa as traduções embutidas (pt-BR e en)
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return newService(embedded, "locales", defaultLang)
}

func newService(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado.
// Parâmetros são interpolados como template Go ({{.Detail}}, {{.Fields}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	message := s.lookup(lang, key)
	if message == "" {
		message = s.lookup(s.defaultLanguage, key)
	}

	if message == "" {
		return key
	}

	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := s.template(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

func (s *Service) lookup(lang, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// template compila cada mensagem uma única vez
func (s *Service) template(message string) (*template.Template, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[message]
	s.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.templates[message] = tmpl
	s.mu.Unlock()

	return tmpl, nil
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
