package projection

import (
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
	"pgregory.net/rapid"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Text: "A", Completed: true},
		{ID: 2, Text: "B"},
		{ID: 3, Text: "C", Completed: true},
	}
}

func TestProjectAllKeepsOrderAndMarksCompleted(t *testing.T) {
	rows := Project(sampleTasks(), model.FilterAll)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].Struck || rows[0].Toggle != ActionMarkIncomplete {
		t.Fatalf("completed row should be struck with mark-incomplete: %+v", rows[0])
	}
	if rows[1].Struck || rows[1].Toggle != ActionMarkComplete {
		t.Fatalf("open row should be plain with mark-complete: %+v", rows[1])
	}
	for _, r := range rows {
		if r.Deletable {
			t.Fatalf("all view must not offer delete: %+v", r)
		}
	}
}

func TestProjectCompletedOffersDelete(t *testing.T) {
	rows := Project(sampleTasks(), model.FilterCompleted)
	if len(rows) != 2 || rows[0].Task.ID != 1 || rows[1].Task.ID != 3 {
		t.Fatalf("unexpected completed rows: %+v", rows)
	}
	for _, r := range rows {
		if !r.Struck || !r.Deletable || r.Toggle != ActionMarkIncomplete {
			t.Fatalf("completed row missing affordances: %+v", r)
		}
	}
}

func TestProjectUncompletedHasNoDelete(t *testing.T) {
	rows := Project(sampleTasks(), model.FilterUncompleted)
	if len(rows) != 1 || rows[0].Task.Text != "B" {
		t.Fatalf("unexpected uncompleted rows: %+v", rows)
	}
	if rows[0].Struck || rows[0].Deletable || rows[0].Toggle != ActionMarkComplete {
		t.Fatalf("uncompleted row has wrong affordances: %+v", rows[0])
	}
}

func TestProjectEmpty(t *testing.T) {
	for _, mode := range []model.FilterMode{model.FilterAll, model.FilterCompleted, model.FilterUncompleted} {
		if rows := Project(nil, mode); len(rows) != 0 {
			t.Fatalf("%s: expected no rows, got %d", mode, len(rows))
		}
	}
}

func TestHeadingAndSummary(t *testing.T) {
	if Heading(model.FilterCompleted) != "Completed tasks" || Heading(model.FilterAll) != "All tasks" {
		t.Fatal("unexpected headings")
	}
	s := Summarize(sampleTasks())
	if s.Total != 3 || s.Completed != 2 || s.Open != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if IndexOf(Project(sampleTasks(), model.FilterAll), 3) != 2 {
		t.Fatal("expected id 3 at row 2")
	}
	if IndexOf(nil, 3) != -1 {
		t.Fatal("expected -1 for missing id")
	}
}

func TestPropertyProjectionMatchesFilter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		flags := rapid.SliceOf(rapid.Bool()).Draw(rt, "completed")
		tasks := make([]model.Task, len(flags))
		for i, done := range flags {
			tasks[i] = model.Task{ID: model.TaskID(i + 1), Text: "t", Completed: done}
		}
		mode := rapid.SampledFrom([]model.FilterMode{model.FilterAll, model.FilterCompleted, model.FilterUncompleted}).Draw(rt, "mode")

		var want []model.Task
		for _, task := range tasks {
			switch {
			case mode == model.FilterAll,
				mode == model.FilterCompleted && task.Completed,
				mode == model.FilterUncompleted && !task.Completed:
				want = append(want, task)
			}
		}
		rows := Project(tasks, mode)
		if len(rows) != len(want) {
			rt.Fatalf("len = %d, want %d", len(rows), len(want))
		}
		for i := range rows {
			if rows[i].Task != want[i] {
				rt.Fatalf("row %d = %+v, want %+v", i, rows[i].Task, want[i])
			}
			if rows[i].Struck != rows[i].Task.Completed {
				rt.Fatalf("row %d strikethrough mismatch", i)
			}
		}
	})
}
