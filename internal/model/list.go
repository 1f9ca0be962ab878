package model

type Todo struct {
	ID        int    `json:"id"`
	ListID    int    `json:"list_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type List struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Todos []Todo `json:"todos"`
}

func (l List) TodoCount() int {
	return len(l.Todos)
}

func (l List) RemainingCount() int {
	n := 0
	for _, t := range l.Todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// IsComplete reports whether the list has todos and all of them are done.
// An empty list is never complete.
func (l List) IsComplete() bool {
	return l.TodoCount() > 0 && l.RemainingCount() == 0
}
