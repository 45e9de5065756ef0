package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "Remove \"" + m.title + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
