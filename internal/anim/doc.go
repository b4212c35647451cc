// Package anim drives the wave animation.
//
// A [Driver] owns the animation [State], asks the wave generator for one
// frame per tick and hands it to a [Renderer]. The only suspension points
// are the fixed frame and pattern pauses; cancelling the context passed to
// [Driver.Run] is observed at each of them and ends the loop cleanly.
//
// # Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	d := anim.New(config.DefaultConfig(), anim.NewTerminal(os.Stdout))
//	err := d.Run(ctx)
//
// Driver instances are NOT safe for concurrent use.
package anim
