package engine

// Controller drives the read-input → process → repeat cycle.
type Controller struct {
	engine *Engine
}

// NewController creates a controller over the engine.
func NewController(e *Engine) *Controller {
	return &Controller{engine: e}
}

// Run greets the player, describes the starting room, and loops until a
// quit command executes or the input source is exhausted.
func (c *Controller) Run() {
	e := c.engine
	e.UI.DisplayWelcomeMessage()

	room := e.Game.CurrentRoom()
	e.UI.DisplayRoomTitle(room.Title)
	e.UI.DisplayMessage(e.Game.DescribeRoom(room, false))

	for {
		input, ok := e.UI.GetUserInput()
		if !ok {
			return
		}
		if !e.Process(input) {
			return
		}
	}
}
