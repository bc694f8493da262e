package shell

// Kind is one of the verbs the shell understands.
type Kind int

const (
	KindEcho Kind = iota
	KindExit
	KindHelp
	KindListDirectory
)

// FlagEchoU is accepted by echo. Its effect is not defined yet.
const FlagEchoU = "-u"

type kindRules struct {
	name  string
	flags map[string]struct{}
	// nil means any number of arguments
	args *ArgumentCount
}

func argCount(c ArgumentCount) *ArgumentCount {
	return &c
}

var kinds = map[Kind]kindRules{
	KindEcho: {
		name:  "echo",
		flags: map[string]struct{}{FlagEchoU: {}},
		args:  argCount(AtLeast(1)),
	},
	KindExit: {
		name: "exit",
		args: argCount(Exact(0)),
	},
	KindHelp: {
		name: "help",
		args: argCount(Exact(0)),
	},
	KindListDirectory: {
		name: "ls",
	},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for kind, rules := range kinds {
		m[rules.name] = kind
	}
	return m
}()

// LookupKind resolves a command name. Matching is exact and case-sensitive.
func LookupKind(name string) (Kind, bool) {
	kind, ok := kindsByName[name]
	return kind, ok
}

func (k Kind) String() string {
	if rules, ok := kinds[k]; ok {
		return rules.name
	}
	return "unknown"
}

func (k Kind) SupportsFlag(flag string) bool {
	_, ok := kinds[k].flags[flag]
	return ok
}

// ExpectedArguments returns the argument count constraint, if the kind
// declares one.
func (k Kind) ExpectedArguments() (ArgumentCount, bool) {
	rules := kinds[k]
	if rules.args == nil {
		return ArgumentCount{}, false
	}
	return *rules.args, true
}
