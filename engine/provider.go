package engine

import (
	"fmt"
	"strings"

	"bean-mapper/errs"
	"bean-mapper/internal/common"
)

type Provider int

const (
	ProviderAuto Provider = iota
	ProviderReflect
	ProviderJSON
	ProviderYAML

	// ProviderTotal is a constant that represents the total number of providers defined
	ProviderTotal = int(iota)
)

// autoOrder is the preference order ProviderAuto resolves through.
var autoOrder = []Provider{ProviderReflect, ProviderJSON, ProviderYAML}

func (p Provider) String() string {
	switch p {
	case ProviderAuto:
		return "auto"
	case ProviderReflect:
		return "reflect"
	case ProviderJSON:
		return "json"
	case ProviderYAML:
		return "yaml"
	default:
		return common.UnknownStr
	}
}

// ParseProvider parses a provider name, case-insensitively. The empty string
// is ProviderAuto.
func ParseProvider(name string) (Provider, error) {
	if name == "" {
		return ProviderAuto, nil
	}

	for p := range Provider(ProviderTotal) {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}

	return ProviderAuto, fmt.Errorf("%w: %q", errs.ErrUnknownProvider, name)
}

// Providers returns every provider, ProviderAuto first.
func Providers() []Provider {
	out := make([]Provider, 0, ProviderTotal)
	for p := range Provider(ProviderTotal) {
		out = append(out, p)
	}

	return out
}

// Names returns the names of every provider, in Providers order.
func Names() []string {
	return common.MapSlice(Providers(), Provider.String)
}

// Resolve returns the concrete provider p stands for. Only ProviderAuto
// changes.
func (p Provider) Resolve() Provider {
	if p != ProviderAuto {
		return p
	}

	first, _ := common.First(autoOrder)

	return first
}
