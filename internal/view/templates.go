package view

import "html/template"

func newTemplates() map[string]*template.Template {
	funcs := template.FuncMap{
		"listClass": func(complete bool) string {
			if complete {
				return "complete"
			}
			return ""
		},
		"not": func(b bool) bool { return !b },
	}
	layout := template.Must(template.New("layout").Funcs(funcs).Parse(layoutTemplate))

	sources := map[string]string{
		PageLists:    listsTemplate,
		PageNewList:  newListTemplate,
		PageList:     listTemplate,
		PageEditList: editListTemplate,
	}
	pages := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		pages[name] = template.Must(template.Must(layout.Clone()).Parse(src))
	}
	return pages
}

const layoutTemplate = `{{define "layout"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{if .Title}}{{.Title}} - {{end}}Todo Lists</title>
  <style>
    body {
      margin: 0;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #2b2b2b;
      background: #f4f4f0;
    }
    header, main {
      max-width: 720px;
      margin: 0 auto;
      padding: 16px 24px;
    }
    header h1 a {
      color: inherit;
      text-decoration: none;
    }
    .flash {
      padding: 10px 14px;
      border-radius: 4px;
      margin-bottom: 16px;
    }
    .flash.error { background: #f9dede; color: #8a1f1f; }
    .flash.success { background: #dff3df; color: #1e5e1e; }
    ul.lists, ul.todos {
      list-style: none;
      padding: 0;
    }
    ul.lists li, ul.todos li {
      display: flex;
      align-items: center;
      justify-content: space-between;
      padding: 8px 0;
      border-bottom: 1px solid #ddd;
    }
    li.complete > a, li.complete .name {
      color: #999;
      text-decoration: line-through;
    }
    form.inline { display: inline; }
    .actions { display: flex; gap: 8px; }
  </style>
</head>
<body>
  <header>
    <h1><a href="/lists">Todo Lists</a></h1>
  </header>
  <main>
    {{with .Flash.Error}}<div class="flash error">{{.}}</div>{{end}}
    {{with .Flash.Success}}<div class="flash success">{{.}}</div>{{end}}
    {{template "content" .}}
  </main>
  <script>
    document.addEventListener("submit", function (event) {
      var form = event.target;
      if (!form.classList.contains("delete")) {
        return;
      }
      event.preventDefault();
      if (!window.confirm("Are you sure? This cannot be undone!")) {
        return;
      }
      var request = new XMLHttpRequest();
      request.open("POST", form.getAttribute("action"));
      request.setRequestHeader("X-Requested-With", "XMLHttpRequest");
      request.onload = function () {
        if (request.status === 204) {
          var item = form.closest("li");
          if (item) {
            item.remove();
          }
        } else if (request.status === 200) {
          window.location.href = request.responseText;
        } else {
          window.location.reload();
        }
      };
      request.send();
    });
  </script>
</body>
</html>
{{end}}`

const listsTemplate = `{{define "content"}}
<section>
  <div class="actions">
    <a href="/lists/new">New List</a>
  </div>
  {{if .Data.Lists}}
  <ul class="lists">
    {{range .Data.Lists}}
    <li class="{{listClass .Complete}}" id="list-{{.Index}}">
      <a href="/lists/{{.ID}}">{{.Name}}</a>
      <span>{{.Remaining}} / {{.TodoCount}}</span>
    </li>
    {{end}}
  </ul>
  {{else}}
  <p>There are no lists yet.</p>
  {{end}}
</section>
{{end}}`

const newListTemplate = `{{define "content"}}
<section>
  <h2>Create a New List</h2>
  <form action="/lists" method="post">
    <label for="list_name">Enter the name for your new list:</label>
    <input id="list_name" name="list_name" placeholder="List Name" type="text" value="{{.Data.ListName}}">
    <button type="submit">Save</button>
    <a href="/lists">Cancel</a>
  </form>
</section>
{{end}}`

const listTemplate = `{{define "content"}}
<section>
  {{with .Data.List}}
  <h2 class="{{listClass .Complete}}">{{.Name}}</h2>
  <div class="actions">
    <a href="/lists/{{.ID}}/edit">Edit List</a>
    <form class="inline" action="/lists/{{.ID}}/complete_all" method="post">
      <button type="submit">Complete All</button>
    </form>
  </div>
  {{end}}
  <ul class="todos">
    {{$listID := .Data.List.ID}}
    {{range .Data.Todos}}
    <li class="{{listClass .Completed}}" id="todo-{{.Index}}">
      <form class="inline" action="/lists/{{$listID}}/todos/{{.ID}}" method="post">
        <input type="hidden" name="completed" value="{{not .Completed}}">
        <button type="submit">{{if .Completed}}Undo{{else}}Done{{end}}</button>
      </form>
      <span class="name">{{.Name}}</span>
      <form class="inline delete" action="/lists/{{$listID}}/todos/{{.ID}}/destroy" method="post">
        <button type="submit">Delete</button>
      </form>
    </li>
    {{end}}
  </ul>
  <form action="/lists/{{.Data.List.ID}}/todos" method="post">
    <label for="todo">Enter a new todo item:</label>
    <input id="todo" name="todo" placeholder="Something to do" type="text" value="{{.Data.TodoInput}}">
    <button type="submit">Add</button>
  </form>
</section>
{{end}}`

const editListTemplate = `{{define "content"}}
<section>
  <h2>Editing '{{.Data.List.Name}}'</h2>
  <form action="/lists/{{.Data.List.ID}}" method="post">
    <label for="list_name">Enter the new name for the list:</label>
    <input id="list_name" name="list_name" type="text" value="{{.Data.ListName}}">
    <button type="submit">Save</button>
    <a href="/lists/{{.Data.List.ID}}">Cancel</a>
  </form>
  <form class="delete" action="/lists/{{.Data.List.ID}}/destroy" method="post">
    <button type="submit">Delete List</button>
  </form>
</section>
{{end}}`
