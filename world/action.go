package world

// Condition type constants.
const (
	ConditionLocation = "location"
	ConditionHasState = "hasState"
	ConditionHasItem  = "hasItem"
)

// Condition is a typed boolean predicate over world state.
//
//	location: the player's current room name equals Value.
//	hasState: the item named Target is currently in state Value.
//	hasItem:  the player possesses an item named Target; when Value is a
//	          number, with at least that count.
type Condition struct {
	Type   string
	Target string
	Value  string
}

// CommandAction is the uniform (command, argument, parameter) tuple executed
// by both item triggers and dialog actions, with optional success/failure
// response text keys.
type CommandAction struct {
	Command         string
	Argument        string
	Parameter       string
	SuccessResponse string
	FailureResponse string
}

// ActionTrigger binds a verb on an item to a list of command actions,
// optionally gated by conditions.
type ActionTrigger struct {
	Verb       string
	Conditions []Condition
	Actions    []CommandAction
}
