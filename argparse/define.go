package argparse

// Define registers an option of type typ. def is copied into the value
// store when non-nil and must match the type: int for ArgTypeInt, float64
// for ArgTypeDouble, bool for ArgTypeBool, string for ArgTypeString. List
// types accept no default.
func (p *Parser) Define(short, long string, typ ArgType, help string, required bool, def any) error {
	return p.DefineEx(short, long, typ, help, required, def, 0)
}

// DefineEx is Define with a GNU joining character, so that "--long=value"
// (suffix '=') carries its value in the same token. A zero suffix disables
// joining.
func (p *Parser) DefineEx(short, long string, typ ArgType, help string, required bool, def any, suffix byte) error {
	p.errs.Clear()
	if typ < ArgTypeInt || typ > ArgTypeStringList {
		return p.errs.Set(CategoryConfig, firstNonEmpty(long, short), "Unsupported argument type")
	}
	return p.define(&Argument{
		Short:     short,
		Long:      long,
		Type:      typ,
		Help:      help,
		Required:  required,
		Suffix:    suffix,
		Delimiter: DelimiterSeparate,
	}, def)
}

// DefineList registers a list option whose element type is elem (int,
// double or string). Values are separate tokens.
func (p *Parser) DefineList(short, long string, elem ArgType, help string, required bool) error {
	return p.DefineListEx(short, long, elem, help, required, 0, DelimiterSeparate)
}

// DefineListEx is DefineList with a GNU joining character and a delimiter
// that splits a single token into several values, e.g. "1,2,3" with ','.
// A zero delimiter means DelimiterSeparate.
func (p *Parser) DefineListEx(short, long string, elem ArgType, help string, required bool, suffix, delimiter byte) error {
	p.errs.Clear()
	typ, ok := listOf(elem)
	if !ok {
		return p.errs.Set(CategoryConfig, firstNonEmpty(long, short), "List element type must be int, double or string")
	}
	if delimiter == 0 {
		delimiter = DelimiterSeparate
	}
	return p.define(&Argument{
		Short:     short,
		Long:      long,
		Type:      typ,
		Help:      help,
		Required:  required,
		Suffix:    suffix,
		Delimiter: delimiter,
	}, nil)
}

func (p *Parser) define(a *Argument, def any) error {
	if a.Short == "" && a.Long == "" {
		return p.errs.Set(CategoryConfig, "", "Argument must have a short or long name")
	}
	if p.help != nil && (p.help.matches(a.Short) || p.help.matches(a.Long)) {
		p.logger.Debug("ignoring re-registration of help option %q", firstNonEmpty(a.Short, a.Long))
		return nil
	}
	for _, name := range [...]string{a.Short, a.Long} {
		if p.find(name) != nil {
			return p.errs.Set(CategoryDuplicateArgument, name, "Argument already defined")
		}
	}

	a.value = newValueStore(a.Type)
	if err := a.value.setDefault(def); err != nil {
		return p.errs.record(wrapError(CategoryConfig, a.label(), "Invalid default value", err))
	}

	p.args = append(p.args, a)
	before := p.index.tableCapacity()
	promoted, err := p.index.maintain(p.args, a)
	switch after := p.index.tableCapacity(); {
	case promoted:
		p.logger.Debug("lookup index switched to hashed mode at %d definitions (capacity %d)", len(p.args), after)
	case before > 0 && after > before:
		p.logger.Debug("lookup index resized to %d buckets", after)
	}
	if err != nil {
		p.logger.Warning("lookup index unavailable, using linear scan: %v", err)
		return p.errs.record(wrapError(CategoryMemory, a.label(), "Lookup index could not grow", err))
	}
	return nil
}

func firstNonEmpty(names ...string) string {
	for _, n := range names {
		if n != "" {
			return n
		}
	}
	return ""
}
