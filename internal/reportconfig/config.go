package reportconfig

// Profile holds the user-facing labels of the report table
type Profile struct {
	Title   string  `yaml:"title"`
	Columns Columns `yaml:"columns"`
}

// Columns 표 헤더 라벨
type Columns struct {
	Position string `yaml:"position"` // "#"
	Name     string `yaml:"name"`
	Mean     string `yaml:"mean"`
}

// Headers returns the column labels in display order
func (c Columns) Headers() []string {
	return []string{c.Position, c.Name, c.Mean}
}

// Default returns the built-in student performance labels
func Default() Profile {
	return Profile{
		Title: "Успеваемость",
		Columns: Columns{
			Position: "#",
			Name:     "Имя",
			Mean:     "Средняя оценка",
		},
	}
}
