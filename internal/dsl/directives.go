// Package dsl exposes the configuration builder through directive names.
//
// Dynamically typed front ends, such as the YAML task document, refer to
// settings by name instead of calling typed methods. Every directive maps to
// exactly one Configuration method; the package holds no state of its own.
package dsl

import (
	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
)

// arity describes the argument counts a directive accepts.
type arity struct {
	min, max int // max < 0 means unbounded
}

func (a arity) accepts(n int) bool {
	return n >= a.min && (a.max < 0 || n <= a.max)
}

type directive struct {
	arity arity
	apply func(cfg *domain.Configuration, name string, args []any) error
}

var (
	none     = arity{0, 0}
	one      = arity{1, 1}
	optional = arity{0, 1}
	many     = arity{0, -1}
	entry    = arity{1, 2}
)

var directives = map[string]directive{}

func init() {
	flags := map[string]func(*domain.Configuration){
		"dontshrink":                           (*domain.Configuration).DontShrink,
		"dontoptimize":                         (*domain.Configuration).DontOptimize,
		"dontobfuscate":                        (*domain.Configuration).DontObfuscate,
		"dontpreverify":                        (*domain.Configuration).DontPreverify,
		"skipnonpubliclibraryclasses":          (*domain.Configuration).SkipNonPublicLibraryClasses,
		"dontskipnonpubliclibraryclasses":      (*domain.Configuration).DontSkipNonPublicLibraryClasses,
		"dontskipnonpubliclibraryclassmembers": (*domain.Configuration).DontSkipNonPublicLibraryClassMembers,
		"ignorewarnings":                       (*domain.Configuration).IgnoreWarnings,
		"verbose":                              (*domain.Configuration).Verbose,
		"allowaccessmodification":              (*domain.Configuration).AllowAccessModification,
		"mergeinterfacesaggressively":          (*domain.Configuration).MergeInterfacesAggressively,
		"overloadaggressively":                 (*domain.Configuration).OverloadAggressively,
		"useuniqueclassmembernames":            (*domain.Configuration).UseUniqueClassMemberNames,
		"dontusemixedcaseclassnames":           (*domain.Configuration).DontUseMixedCaseClassNames,
		"keepparameternames":                   (*domain.Configuration).KeepParameterNames,
		"microedition":                         (*domain.Configuration).MicroEdition,
		"android":                              (*domain.Configuration).Android,
		"addconfigurationdebugging":            (*domain.Configuration).AddConfigurationDebugging,
		"optimizeaggressively":                 (*domain.Configuration).OptimizeAggressively,
		"keepkotlinmetadata":                   (*domain.Configuration).KeepKotlinMetadata,
		"dontprocesskotlinmetadata":            (*domain.Configuration).DontProcessKotlinMetadata,
	}
	for name, set := range flags {
		directives[name] = directive{arity: none, apply: func(cfg *domain.Configuration, _ string, _ []any) error {
			set(cfg)
			return nil
		}}
	}

	// A missing package or attribute name means the root package or no name.
	optionalStrings := map[string]func(*domain.Configuration, string){
		"flattenpackagehierarchy":   (*domain.Configuration).FlattenPackageHierarchy,
		"repackageclasses":          (*domain.Configuration).RepackageClasses,
		"renamesourcefileattribute": (*domain.Configuration).RenameSourceFileAttribute,
	}
	for name, set := range optionalStrings {
		directives[name] = directive{arity: optional, apply: func(cfg *domain.Configuration, name string, args []any) error {
			if len(args) == 0 {
				set(cfg, "")
				return nil
			}
			s, err := toString(name, args[0])
			if err != nil {
				return err
			}
			set(cfg, s)
			return nil
		}}
	}

	directives["target"] = directive{arity: one, apply: func(cfg *domain.Configuration, name string, args []any) error {
		s, err := toString(name, args[0])
		if err != nil {
			return err
		}
		cfg.Target(s)
		return nil
	}}

	directives["optimizationpasses"] = directive{arity: one, apply: func(cfg *domain.Configuration, name string, args []any) error {
		n, err := toInt(name, args[0])
		if err != nil {
			return err
		}
		cfg.OptimizationPasses(n)
		return nil
	}}

	for _, key := range domain.ListKeys() {
		directives[key.String()] = directive{arity: many, apply: func(cfg *domain.Configuration, name string, args []any) error {
			patterns := make([]string, 0, len(args))
			for _, arg := range args {
				s, err := toString(name, arg)
				if err != nil {
					return err
				}
				patterns = append(patterns, s)
			}
			cfg.TouchList(key, patterns...)
			return nil
		}}
	}

	for _, key := range domain.OutputKeys() {
		directives[key.String()] = directive{arity: optional, apply: func(cfg *domain.Configuration, name string, args []any) error {
			if len(args) == 0 {
				cfg.SetOutputToStandardStream(key)
				return nil
			}
			p, err := toPathLike(name, args[0])
			if err != nil {
				return err
			}
			cfg.SetOutputToFile(key, p)
			return nil
		}}
	}

	for _, key := range domain.InputFileKeys() {
		directives[key.String()] = directive{arity: one, apply: func(cfg *domain.Configuration, name string, args []any) error {
			p, err := toPathLike(name, args[0])
			if err != nil {
				return err
			}
			cfg.SetInputFile(key, p)
			return nil
		}}
	}

	registerEntryList("injars", (*domain.Configuration).InputClassPath)
	registerEntryList("outjars", (*domain.Configuration).OutputClassPath)
	registerEntryList("libraryjars", (*domain.Configuration).LibraryClassPath)

	directives["configuration"] = directive{arity: one, apply: func(cfg *domain.Configuration, _ string, args []any) error {
		e, err := domain.NewEntry(args[0])
		if err != nil {
			return err
		}
		cfg.IncludeConfiguration(e)
		return nil
	}}
}

// registerEntryList adds a classpath directive taking an entry and an optional filter.
func registerEntryList(name string, list func(*domain.Configuration) *domain.EntryList) {
	directives[name] = directive{arity: entry, apply: func(cfg *domain.Configuration, name string, args []any) error {
		e, err := domain.NewEntry(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			list(cfg).Append(e)
			return nil
		}
		f, err := toFilter(name, args[1])
		if err != nil {
			return err
		}
		list(cfg).AppendFiltered(e, f)
		return nil
	}}
}
