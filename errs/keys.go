// Package errs holds the error kinds returned by the parser and its collaborators.
// This file contains the translation keys for every error message.
package errs

const (
	prefixKey = "ecp"
)

const (
	ErrorPrefixKey = prefixKey + ".error"
	DetailPathKey  = ErrorPrefixKey + ".detail"
)

// Kind keys - every message starts with the translated "Error:" tag
const (
	ErrInvalidInputKey      = ErrorPrefixKey + ".invalid_input"
	ErrInvalidCommandKey    = ErrorPrefixKey + ".invalid_command"
	ErrInvalidFlagKey       = ErrorPrefixKey + ".invalid_flag"
	ErrIoKey                = ErrorPrefixKey + ".io"
	ErrUnknownKey           = ErrorPrefixKey + ".unknown"
	ErrInvalidDefinitionKey = ErrorPrefixKey + ".invalid_definition"
)

// Detail keys
const (
	ErrNotEnoughArgumentsKey  = DetailPathKey + ".not_enough_arguments"
	ErrCommandNotFoundKey     = DetailPathKey + ".command_not_found"
	ErrSubcommandNotFoundKey  = DetailPathKey + ".subcommand_not_found"
	ErrNoFlagsRecognizedKey   = DetailPathKey + ".no_flags_recognized"
	ErrNilAppKey              = DetailPathKey + ".nil_app"
	ErrEmptyNameKey           = DetailPathKey + ".empty_name"
	ErrDuplicateCommandKey    = DetailPathKey + ".duplicate_command"
	ErrDuplicateFlagKey       = DetailPathKey + ".duplicate_flag"
	ErrShortFlagConflictKey   = DetailPathKey + ".short_flag_conflict"
	ErrReadArgumentsKey       = DetailPathKey + ".read_arguments"
	ErrSplitArgumentsKey      = DetailPathKey + ".split_arguments"
	ErrUnsupportedShellKey    = DetailPathKey + ".unsupported_shell"
	ErrNoCompletionScriptKey  = DetailPathKey + ".no_completion_script"
	ErrCompletionFileKey      = DetailPathKey + ".completion_file"
	ErrInvalidShortFlagKey    = DetailPathKey + ".invalid_short_flag"
	ErrLanguageUnavailableKey = DetailPathKey + ".language_unavailable"
	ErrLoadDefinitionKey      = DetailPathKey + ".load_definition"
)
