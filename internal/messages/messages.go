// Package messages holds the translation keys of non-error texts
package messages

const (
	prefixKey        = "ecp"
	MessagePrefixKey = prefixKey + ".msg"
)

const (
	MsgUsageKey         = MessagePrefixKey + ".usage"
	MsgCommandsKey      = MessagePrefixKey + ".commands"
	MsgOrKey            = MessagePrefixKey + ".or"
	MsgVersionKey       = MessagePrefixKey + ".version"
	MsgCommandArgKey    = MessagePrefixKey + ".command_arg"
	MsgSubcommandArgKey = MessagePrefixKey + ".subcommand_arg"
	MsgFlagsArgKey      = MessagePrefixKey + ".flags_arg"
	MsgValuesArgKey     = MessagePrefixKey + ".values_arg"
	MsgSeparatorKey     = MessagePrefixKey + ".separator"
)
