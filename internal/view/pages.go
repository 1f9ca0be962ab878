package view

import "github.com/jaekwang-park/todo-lists/internal/model"

const (
	PageLists    = "lists"
	PageNewList  = "new_list"
	PageList     = "list"
	PageEditList = "edit_list"
)

// ListRow is one list as shown on the overview and detail pages.
type ListRow struct {
	ID        int
	Name      string
	Index     int
	Complete  bool
	TodoCount int
	Remaining int
}

type TodoRow struct {
	ID        int
	Name      string
	Index     int
	Completed bool
}

type ListsData struct {
	Lists []ListRow
}

// NewListForm backs the creation form.
type NewListForm struct {
	ListName string
}

type ListData struct {
	List      ListRow
	Todos     []TodoRow
	TodoInput string
}

type EditListData struct {
	List     ListRow
	ListName string
}

func newListRow(l model.List, index int) ListRow {
	return ListRow{
		ID:        l.ID,
		Name:      l.Name,
		Index:     index,
		Complete:  l.IsComplete(),
		TodoCount: l.TodoCount(),
		Remaining: l.RemainingCount(),
	}
}

// NewListsData orders lists for the overview: incomplete first.
func NewListsData(lists []model.List) ListsData {
	sorted := model.SortListsForDisplay(lists)
	rows := make([]ListRow, len(sorted))
	for i, item := range sorted {
		rows[i] = newListRow(item.Value, item.Index)
	}
	return ListsData{Lists: rows}
}

// NewListData orders a list's todos for display: open first.
func NewListData(l model.List, todoInput string) ListData {
	sorted := model.SortTodosForDisplay(l.Todos)
	rows := make([]TodoRow, len(sorted))
	for i, item := range sorted {
		rows[i] = TodoRow{
			ID:        item.Value.ID,
			Name:      item.Value.Name,
			Index:     item.Index,
			Completed: item.Value.Completed,
		}
	}
	return ListData{
		List:      newListRow(l, 0),
		Todos:     rows,
		TodoInput: todoInput,
	}
}

// NewEditListData fills the edit form with listName exactly as given.
func NewEditListData(l model.List, listName string) EditListData {
	return EditListData{List: newListRow(l, 0), ListName: listName}
}
