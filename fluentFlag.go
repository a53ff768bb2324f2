package ecp

// NewFlag creates a Flag matched by --long. No validation is performed; see App.Validate.
func NewFlag(long string) *Flag {
	return &Flag{
		long: long,
	}
}

// Description sets the help text of the flag
func (f *Flag) Description(description string) *Flag {
	f.description = description
	return f
}

// Short sets the single-character form of the flag, matched by -c
func (f *Flag) Short(short rune) *Flag {
	f.short = short
	f.hasShort = true
	return f
}

// GetLong returns the long (canonical) name of the flag
func (f *Flag) GetLong() string {
	return f.long
}

// GetShort returns the short form of the flag and whether one was set
func (f *Flag) GetShort() (rune, bool) {
	return f.short, f.hasShort
}

// GetDescription returns the help text of the flag
func (f *Flag) GetDescription() string {
	return f.description
}

func (f *Flag) matches(name string) bool {
	if f.long == name {
		return true
	}
	if !f.hasShort {
		return false
	}

	runes := []rune(name)
	return len(runes) == 1 && runes[0] == f.short
}
