/*
Package runner implements the interactive session loop for the shapes tool.

It is the bridge between the shape model and the person at the keyboard. The
runner presents the main menu, reads raw field values through a pluggable
IOHandler, turns them into numeric measurements, builds shapes and stores them in
a collection. Every recoverable error (bad number, negative side, empty
collection, unknown menu entry) is reported back through the handler and the
session continues.

# Key Components

  - Runner: the menu loop.
  - IOHandler: decouples how the runner talks to the user.
  - TextHandler: line-based implementation over any io.Reader/io.Writer.
  - SurveyHandler: arrow-key prompts for real terminals.
  - Hooks: callbacks fired on every add, query and rejection.

# Usage

	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
