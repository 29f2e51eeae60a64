package status

import "fmt"

// Summary formats the frame metrics as a single status line
func Summary(reg *Registry) string {
	active := ""
	if reg.Bools.Get(KeyMovesActive).Load() {
		active = "+"
	}
	return fmt.Sprintf("fps %4.1f  frame %d  moves %d%s  fading %d  destroyed %d  last %s",
		reg.Floats.Get(KeyFPS).Get(),
		reg.Ints.Get(KeyFrames).Load(),
		reg.Ints.Get(KeyMovesQueued).Load(), active,
		reg.Ints.Get(KeyDestroyPending).Load(),
		reg.Ints.Get(KeyDestroyTotal).Load(),
		reg.Strings.Get(KeyLastAction).Load(),
	)
}
