package dsl

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"go.trai.ch/zerr"
)

// Facade invokes directives on a configuration by name.
type Facade struct {
	cfg *domain.Configuration
}

// New creates a Facade over cfg.
func New(cfg *domain.Configuration) *Facade {
	return &Facade{cfg: cfg}
}

// Configuration returns the configuration the facade mutates.
func (f *Facade) Configuration() *domain.Configuration {
	return f.cfg
}

// Call invokes the directive name with args.
func (f *Facade) Call(name string, args ...any) error {
	d, err := lookup(name)
	if err != nil {
		return err
	}
	if !d.arity.accepts(len(args)) {
		err := zerr.With(domain.ErrInvalidDirectiveArgs, "directive", name)
		return zerr.With(err, "args", len(args))
	}
	return d.apply(f.cfg, name, args)
}

// Get is the property-style form of Call(name): it performs the same
// mutation as calling the directive without arguments and always yields nil.
func (f *Facade) Get(name string) (any, error) {
	if err := f.Call(name); err != nil {
		return nil, err
	}
	return nil, nil
}

// Names returns every directive name in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(directives))
}

// ZeroArg reports whether the directive can be invoked without arguments.
func ZeroArg(name string) bool {
	d, ok := directives[normalize(name)]
	return ok && d.arity.accepts(0)
}

// Known reports whether name is a directive.
func Known(name string) bool {
	_, ok := directives[normalize(name)]
	return ok
}

func lookup(name string) (directive, error) {
	d, ok := directives[normalize(name)]
	if !ok {
		return directive{}, zerr.With(domain.ErrUnknownDirective, "directive", name)
	}
	return d, nil
}

// normalize accepts the option spelling of a directive, with or without its leading dash.
func normalize(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, "-"))
}

func invalidArg(name string, v any) error {
	err := zerr.With(domain.ErrInvalidDirectiveArgs, "directive", name)
	return zerr.With(err, "type", fmt.Sprintf("%T", v))
}

func toString(name string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	default:
		return "", invalidArg(name, v)
	}
}

func toInt(name string, v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, invalidArg(name, v)
		}
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, invalidArg(name, v)
		}
		return int(x), nil
	case float64:
		if x != math.Trunc(x) || x < math.MinInt || x >= math.MaxInt {
			return 0, invalidArg(name, v)
		}
		return int(x), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidDirectiveArgs.Error()), "directive", name)
		}
		return n, nil
	default:
		return 0, invalidArg(name, v)
	}
}

func toPathLike(name string, v any) (domain.PathLike, error) {
	switch x := v.(type) {
	case string:
		return domain.Path(x), nil
	case domain.Path:
		return x, nil
	case domain.File:
		return x, nil
	default:
		return nil, invalidArg(name, v)
	}
}

func toFilter(name string, v any) (domain.Filter, error) {
	switch x := v.(type) {
	case domain.Filter:
		return x, nil
	case string:
		return domain.Pattern(x), nil
	case map[string]string:
		return domain.Filters(x), nil
	case map[string]any:
		categories := make(map[string]string, len(x))
		for k, raw := range x {
			s, ok := raw.(string)
			if !ok {
				err := zerr.With(domain.ErrUnsupportedFilterType, "directive", name)
				return domain.Filter{}, zerr.With(err, "category", k)
			}
			categories[k] = s
		}
		return domain.Filters(categories), nil
	default:
		err := zerr.With(domain.ErrUnsupportedFilterType, "directive", name)
		return domain.Filter{}, zerr.With(err, "type", fmt.Sprintf("%T", v))
	}
}
