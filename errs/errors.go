package errs

import (
	"errors"

	"github.com/napalu/ecp/i18n"
)

// Parse error kinds
var (
	ErrInvalidInput      = i18n.NewError(ErrInvalidInputKey)
	ErrInvalidCommand    = i18n.NewError(ErrInvalidCommandKey)
	ErrInvalidFlag       = i18n.NewError(ErrInvalidFlagKey)
	ErrIo                = i18n.NewError(ErrIoKey)
	ErrUnknown           = i18n.NewError(ErrUnknownKey)
	ErrInvalidDefinition = i18n.NewError(ErrInvalidDefinitionKey)
)

// Details wrapped by the kinds above
var (
	ErrNotEnoughArguments  = i18n.NewError(ErrNotEnoughArgumentsKey)
	ErrCommandNotFound     = i18n.NewError(ErrCommandNotFoundKey)
	ErrSubcommandNotFound  = i18n.NewError(ErrSubcommandNotFoundKey)
	ErrNoFlagsRecognized   = i18n.NewError(ErrNoFlagsRecognizedKey)
	ErrNilApp              = i18n.NewError(ErrNilAppKey)
	ErrEmptyName           = i18n.NewError(ErrEmptyNameKey)
	ErrDuplicateCommand    = i18n.NewError(ErrDuplicateCommandKey)
	ErrDuplicateFlag       = i18n.NewError(ErrDuplicateFlagKey)
	ErrShortFlagConflict   = i18n.NewError(ErrShortFlagConflictKey)
	ErrReadArguments       = i18n.NewError(ErrReadArgumentsKey)
	ErrSplitArguments      = i18n.NewError(ErrSplitArgumentsKey)
	ErrUnsupportedShell    = i18n.NewError(ErrUnsupportedShellKey)
	ErrNoCompletionScript  = i18n.NewError(ErrNoCompletionScriptKey)
	ErrCompletionFile      = i18n.NewError(ErrCompletionFileKey)
	ErrInvalidShortFlag    = i18n.NewError(ErrInvalidShortFlagKey)
	ErrLanguageUnavailable = i18n.NewError(ErrLanguageUnavailableKey)
	ErrLoadDefinition      = i18n.NewError(ErrLoadDefinitionKey)
)

// Kind classifies an error returned by the parser
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindInvalidCommand
	KindInvalidFlag
	KindIo
	KindInvalidDefinition
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidCommand:
		return "InvalidCommand"
	case KindInvalidFlag:
		return "InvalidFlag"
	case KindIo:
		return "IoError"
	case KindInvalidDefinition:
		return "InvalidDefinition"
	default:
		return "Unknown"
	}
}

// KindOf returns the kind of err. Errors which do not carry one of the kind sentinels
// (including nil) are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrInvalidCommand):
		return KindInvalidCommand
	case errors.Is(err, ErrInvalidFlag):
		return KindInvalidFlag
	case errors.Is(err, ErrIo):
		return KindIo
	case errors.Is(err, ErrInvalidDefinition):
		return KindInvalidDefinition
	default:
		return KindUnknown
	}
}
