//go:build !windows && !darwin

package launch

func platformCommands(editor string) map[Action]func(dir string) Command {
	return map[Action]func(dir string) Command{
		ActionExplorer: func(dir string) Command {
			return Command{Name: "xdg-open", Args: []string{dir}}
		},
		ActionEditor: func(dir string) Command {
			return Command{Name: editor, Args: []string{dir}}
		},
		// x-terminal-emulator has no portable directory flag; the working
		// directory carries the target instead.
		ActionTerminal: func(dir string) Command {
			return Command{Name: "x-terminal-emulator", Dir: dir}
		},
	}
}
