package simulate

import (
	"fmt"
	"time"
)

// stepDelay settles each virtual key event before the next one, so
// the compositor sees distinct transitions rather than one burst.
const stepDelay = 10 * time.Millisecond

// Injector is the subset of a uinput keyboard the simulator drives.
type Injector interface {
	KeyDown(key int) error
	KeyPress(key int) error
	KeyUp(key int) error
}

// Inject plays a plan through a virtual keyboard.
func Inject(kbd Injector, plan []Step) error {
	for i, step := range plan {
		var err error
		switch step.Op {
		case OpDown:
			err = kbd.KeyDown(step.Key)
		case OpTap:
			err = kbd.KeyPress(step.Key)
		case OpUp:
			err = kbd.KeyUp(step.Key)
		default:
			err = fmt.Errorf("unknown op %v", step.Op)
		}
		if err != nil {
			return fmt.Errorf("%s %s: %w", step.Op, step.Name, err)
		}
		if i < len(plan)-1 {
			time.Sleep(stepDelay)
		}
	}
	return nil
}
