package domain

type CommandType string

const (
	CommandGenerateName CommandType = "generate_name"
	CommandNameMeaning  CommandType = "name_meaning"
	CommandNameKeywords CommandType = "name_keywords"
	CommandHelp         CommandType = "help"
	CommandStats        CommandType = "stats"
	CommandUnknown      CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

func (c CommandType) IsValid() bool {
	switch c {
	case CommandGenerateName, CommandNameMeaning, CommandNameKeywords,
		CommandHelp, CommandStats, CommandUnknown:
		return true
	default:
		return false
	}
}
