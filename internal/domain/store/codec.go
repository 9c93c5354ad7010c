package store

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"dietpet/internal/platform/logger"
	"dietpet/internal/ports/storage"
)

// Claves en el KV local. StateKey guarda el AppState completo como
// JSON; LangKey guarda solo el código de idioma, como atajo legible
// antes de cargar el blob entero.
const (
	StateKey = "dietpet_data"
	LangKey  = "dietpet_lang"
)

// Locales que resuelven a ruso en la detección de idioma.
var ruLocales = map[string]bool{
	"ru": true,
	"uk": true,
	"be": true,
	"kk": true,
}

// Codec convierte entre el AppState en memoria y su codificación
// durable en el KV. Load nunca falla: storage roto o JSON corrupto
// se tratan como "sin estado previo" y devuelven el estado inicial.
type Codec struct {
	kv  storage.KV
	log logger.Logger

	now    func() time.Time
	locale func() string
}

func NewCodec(kv storage.KV, log logger.Logger) *Codec {
	if log == nil {
		log = logger.New(logger.Options{})
	}
	return &Codec{
		kv:     kv,
		log:    log,
		now:    time.Now,
		locale: systemLocale,
	}
}

// Load lee el blob, lo parsea y aplica el filtro de retención a la
// papelera. Cualquier fallo de lectura o parseo cae en silencio al
// estado inicial sembrado en el idioma detectado: es la ruta de
// recuperación prevista, no un error.
func (c *Codec) Load(ctx context.Context) AppState {
	raw, ok, err := c.kv.Get(ctx, StateKey)
	if err != nil {
		c.log.Warn("storage unavailable, falling back to initial state", map[string]any{"error": err.Error()})
		return c.initialState(ctx)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return c.initialState(ctx)
	}

	var s AppState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		c.log.Warn("stored state unparsable, falling back to initial state", map[string]any{"error": err.Error()})
		return c.initialState(ctx)
	}

	normalize(&s)

	now := c.now()
	s.DeletedPets = filterDeletedPets(s.DeletedPets, now)
	s.DeletedDiets = filterDeletedDiets(s.DeletedDiets, now)

	return s
}

// Save serializa el estado completo y lo escribe pisando el valor
// anterior. A diferencia de Load, el error sí se propaga: perder una
// escritura es una condición que la capa de arriba debe ver.
func (c *Codec) Save(ctx context.Context, s AppState) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, StateKey, string(b))
}

// SaveLanguage persiste el atajo de idioma (clave aparte del blob).
func (c *Codec) SaveLanguage(ctx context.Context, lang Language) error {
	return c.kv.Set(ctx, LangKey, string(lang))
}

// DetectLanguage resuelve el idioma activo: preferencia guardada si
// existe, si no el locale del sistema. El resultado de la detección
// se escribe de vuelta para fijarlo (igual que la app original).
func (c *Codec) DetectLanguage(ctx context.Context) Language {
	if raw, ok, err := c.kv.Get(ctx, LangKey); err == nil && ok {
		if lang := Language(strings.TrimSpace(raw)); lang.IsValid() {
			return lang
		}
	}

	lang := localeLanguage(c.locale())
	if err := c.kv.Set(ctx, LangKey, string(lang)); err != nil {
		c.log.Warn("could not persist detected language", map[string]any{"error": err.Error()})
	}
	return lang
}

func (c *Codec) initialState(ctx context.Context) AppState {
	lang := c.DetectLanguage(ctx)
	return AppState{
		Pets:         defaultPets(lang),
		DeletedPets:  []DeletedPet{},
		DeletedDiets: []DeletedDiet{},
		Language:     lang,
	}
}

// normalize tolera blobs escritos por versiones viejas del esquema:
// deletedPets/deletedDiets ausentes se leen como vacíos, y un idioma
// desconocido cae a inglés.
func normalize(s *AppState) {
	if s.Pets == nil {
		s.Pets = []Pet{}
	}
	if s.DeletedPets == nil {
		s.DeletedPets = []DeletedPet{}
	}
	if s.DeletedDiets == nil {
		s.DeletedDiets = []DeletedDiet{}
	}
	if !s.Language.IsValid() {
		s.Language = LangEN
	}
}

// localeLanguage mapea un locale tipo "ru_RU.UTF-8" o "uk-UA" al
// idioma de la app: ru/uk/be/kk => ru, el resto => en.
func localeLanguage(locale string) Language {
	code := strings.ToLower(strings.TrimSpace(locale))
	for _, sep := range []string{".", "_", "-"} {
		if i := strings.Index(code, sep); i >= 0 {
			code = code[:i]
		}
	}
	if ruLocales[code] {
		return LangRU
	}
	return LangEN
}

func systemLocale() string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
