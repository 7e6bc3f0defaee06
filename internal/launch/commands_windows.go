//go:build windows

package launch

func platformCommands(editor string) map[Action]func(dir string) Command {
	return map[Action]func(dir string) Command{
		ActionExplorer: func(dir string) Command {
			return Command{Name: "explorer", Args: []string{dir}}
		},
		ActionEditor: func(dir string) Command {
			return Command{Name: editor, Args: []string{dir}}
		},
		ActionTerminal: func(dir string) Command {
			return Command{Name: "wt", Args: []string{"-d", dir}}
		},
	}
}
