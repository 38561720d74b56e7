package formatters

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/patrickprogramme/subformat/pkg/model"
)

// ErrUnknownFormatterType est la cible errors.Is de UnknownFormatterTypeError.
var ErrUnknownFormatterType = errors.New("unknown formatter type")

// UnknownFormatterTypeError indique le nom demandé et les noms valides.
type UnknownFormatterTypeError struct {
	Name  string
	Valid []string
}

func (e *UnknownFormatterTypeError) Error() string {
	return fmt.Sprintf("the format %q is not supported, choose one of: %s",
		e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownFormatterTypeError) Is(target error) bool {
	return target == ErrUnknownFormatterType
}

// formatterTypes : table statique nom -> constructeur. Ces noms sont exposés
// en CLI et en config, ne pas les changer.
var formatterTypes = map[model.Format]func() Formatter{
	model.FormatJSON:   func() Formatter { return NewJSONFormatter() },
	model.FormatPretty: func() Formatter { return NewPrettyPrintFormatter() },
	model.FormatText:   func() Formatter { return NewTextFormatter() },
	model.FormatWebVTT: func() Formatter { return NewWebVTTFormatter() },
	model.FormatSRT:    func() Formatter { return NewSRTFormatter() },
}

// Loader sélectionne un Formatter par nom. Il ne porte aucun état.
type Loader struct{}

// FormatterLoader est l'ancien nom de Loader.
type FormatterLoader = Loader

func NewLoader() Loader {
	return Loader{}
}

// ParseName convertit un nom de format (CLI, config) en model.Format.
// "" donne le format par défaut ; un nom inconnu donne *UnknownFormatterTypeError.
// La normalisation (espaces, casse) est celle de model.ParseFormat.
func ParseName(name string) (model.Format, error) {
	if strings.TrimSpace(name) == "" {
		return model.DefaultFormat, nil
	}
	f, err := model.ParseFormat(name)
	if err != nil {
		return "", &UnknownFormatterTypeError{Name: name, Valid: Names()}
	}
	return f, nil
}

// Load retourne une nouvelle instance du formatter nommé. Sans nom (ou avec
// ""), le formatter par défaut (pretty). Seul le premier nom compte.
func (l Loader) Load(names ...string) (Formatter, error) {
	var name string
	if len(names) > 0 {
		name = names[0]
	}
	f, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return l.LoadFormat(f)
}

// LoadFormat est Load pour une valeur déjà typée.
func (Loader) LoadFormat(f model.Format) (Formatter, error) {
	ctor, ok := formatterTypes[f]
	if !ok {
		return nil, &UnknownFormatterTypeError{Name: string(f), Valid: Names()}
	}
	return ctor(), nil
}

// Names retourne les noms de formats connus, triés.
func Names() []string {
	out := make([]string, 0, len(formatterTypes))
	for k := range formatterTypes {
		out = append(out, string(k))
	}
	slices.Sort(out)
	return out
}

// IsKnown indique si name désigne un formatter enregistré.
func IsKnown(name string) bool {
	f, err := model.ParseFormat(name)
	if err != nil {
		return false
	}
	_, ok := formatterTypes[f]
	return ok
}
