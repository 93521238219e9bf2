package config

import (
	"io"
	"iter"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecordRenderer = (*Renderer)(nil)

// Renderer writes a frozen configuration as a YAML document with every path resolved.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type recordView struct {
	BaseDir       string              `yaml:"baseDir"`
	InJars        []entryView         `yaml:"injars,omitempty"`
	OutJars       []entryView         `yaml:"outjars,omitempty"`
	LibraryJars   []entryView         `yaml:"libraryjars,omitempty"`
	Configuration []string            `yaml:"configuration,omitempty"`
	Flags         flagsView           `yaml:"flags"`
	Filters       map[string][]string `yaml:"filters,omitempty"`
	Outputs       map[string]string   `yaml:"outputs,omitempty"`
	Inputs        map[string]string   `yaml:"inputs,omitempty"`
}

type entryView struct {
	Path   string            `yaml:"path"`
	Filter map[string]string `yaml:"filter,omitempty"`
}

type flagsView struct {
	Shrink                           bool    `yaml:"shrink"`
	Optimize                         bool    `yaml:"optimize"`
	Obfuscate                        bool    `yaml:"obfuscate"`
	Preverify                        bool    `yaml:"preverify"`
	SkipNonPublicLibraryClasses      bool    `yaml:"skipNonPublicLibraryClasses"`
	SkipNonPublicLibraryClassMembers bool    `yaml:"skipNonPublicLibraryClassMembers"`
	IgnoreWarnings                   bool    `yaml:"ignoreWarnings"`
	Verbose                          bool    `yaml:"verbose"`
	AllowAccessModification          bool    `yaml:"allowAccessModification"`
	MergeInterfacesAggressively      bool    `yaml:"mergeInterfacesAggressively"`
	OverloadAggressively             bool    `yaml:"overloadAggressively"`
	UseUniqueClassMemberNames        bool    `yaml:"useUniqueClassMemberNames"`
	UseMixedCaseClassNames           bool    `yaml:"useMixedCaseClassNames"`
	KeepParameterNames               bool    `yaml:"keepParameterNames"`
	MicroEdition                     bool    `yaml:"microEdition"`
	Android                          bool    `yaml:"android"`
	AddConfigurationDebugging        bool    `yaml:"addConfigurationDebugging"`
	OptimizeAggressively             bool    `yaml:"optimizeAggressively"`
	KeepKotlinMetadata               bool    `yaml:"keepKotlinMetadata"`
	DontProcessKotlinMetadata        bool    `yaml:"dontProcessKotlinMetadata"`
	OptimizationPasses               int     `yaml:"optimizationPasses"`
	Target                           *string `yaml:"target,omitempty"`
	FlattenPackageHierarchy          *string `yaml:"flattenPackageHierarchy,omitempty"`
	RepackageClasses                 *string `yaml:"repackageClasses,omitempty"`
	RenameSourceFileAttribute        *string `yaml:"renameSourceFileAttribute,omitempty"`
}

// Render writes rec to w.
func (r *Renderer) Render(w io.Writer, rec *domain.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newRecordView(rec)); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return nil
}

func newRecordView(rec *domain.Record) recordView {
	v := recordView{
		BaseDir:       rec.BaseDir(),
		InJars:        entryViews(rec.ResolvedInJars()),
		OutJars:       entryViews(rec.ResolvedOutJars()),
		LibraryJars:   entryViews(rec.ResolvedLibraryJars()),
		Configuration: rec.ResolvedConfigurationFiles(),
		Flags:         newFlagsView(rec.Flags()),
		Filters:       make(map[string][]string),
		Outputs:       make(map[string]string),
		Inputs:        make(map[string]string),
	}

	for _, key := range domain.ListKeys() {
		if patterns, ok := rec.FilterPatterns(key); ok {
			v.Filters[key.String()] = patterns
		}
	}
	for _, key := range domain.OutputKeys() {
		if target := rec.Output(key); !target.IsUnset() {
			v.Outputs[key.String()] = target.String()
		}
	}
	for _, key := range domain.InputFileKeys() {
		if p, ok := rec.InputFile(key); ok {
			v.Inputs[key.String()] = p
		}
	}
	return v
}

func entryViews(seq iter.Seq[domain.ResolvedEntry]) []entryView {
	var views []entryView
	for e := range seq {
		views = append(views, entryView{Path: e.Path, Filter: e.Filter.Map()})
	}
	return views
}

func newFlagsView(f domain.Flags) flagsView {
	return flagsView{
		Shrink:                           f.Shrink,
		Optimize:                         f.Optimize,
		Obfuscate:                        f.Obfuscate,
		Preverify:                        f.Preverify,
		SkipNonPublicLibraryClasses:      f.SkipNonPublicLibraryClasses,
		SkipNonPublicLibraryClassMembers: f.SkipNonPublicLibraryClassMembers,
		IgnoreWarnings:                   f.IgnoreWarnings,
		Verbose:                          f.Verbose,
		AllowAccessModification:          f.AllowAccessModification,
		MergeInterfacesAggressively:      f.MergeInterfacesAggressively,
		OverloadAggressively:             f.OverloadAggressively,
		UseUniqueClassMemberNames:        f.UseUniqueClassMemberNames,
		UseMixedCaseClassNames:           f.UseMixedCaseClassNames,
		KeepParameterNames:               f.KeepParameterNames,
		MicroEdition:                     f.MicroEdition,
		Android:                          f.Android,
		AddConfigurationDebugging:        f.AddConfigurationDebugging,
		OptimizeAggressively:             f.OptimizeAggressively,
		KeepKotlinMetadata:               f.KeepKotlinMetadata,
		DontProcessKotlinMetadata:        f.DontProcessKotlinMetadata,
		OptimizationPasses:               f.OptimizationPasses,
		Target:                           optional(f.Target),
		FlattenPackageHierarchy:          optional(f.FlattenPackageHierarchy),
		RepackageClasses:                 optional(f.RepackageClasses),
		RenameSourceFileAttribute:        optional(f.RenameSourceFileAttribute),
	}
}

func optional(o domain.OptionalString) *string {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}
