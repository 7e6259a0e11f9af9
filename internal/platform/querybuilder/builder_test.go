package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(ContainsFold("name", "ars"), Eq("coach", "Arteta")).
		OrderBy("id ASC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := `SELECT id, name FROM teams WHERE name ILIKE $1 ESCAPE '\' AND coach = $2 ORDER BY id ASC LIMIT 10 OFFSET 20`
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "%ars%" || args[1] != "Arteta" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RejectsNegativeWindow(t *testing.T) {
	cases := []struct {
		name    string
		builder *SelectBuilder
		wantErr string
	}{
		{name: "negative offset", builder: Select("id").From("teams").Limit(20).Offset(-16), wantErr: "select offset must be >= 0, got -16"},
		{name: "negative limit", builder: Select("id").From("teams").Limit(-1), wantErr: "select limit must be >= 0, got -1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, _, err := tc.builder.ToSQL()
			if err == nil {
				t.Fatalf("expected error, got query %q", query)
			}
			if err.Error() != tc.wantErr {
				t.Fatalf("unexpected error: want %q, got %q", tc.wantErr, err.Error())
			}
		})
	}

	if _, _, err := Select("id").From("teams").Limit(0).Offset(0).ToSQL(); err != nil {
		t.Fatalf("zero window must build: %v", err)
	}
}

func TestSelectBuilder_CountSQL(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(Eq("team_id", int64(4))).
		OrderBy("id ASC").
		Limit(10).
		CountSQL()
	if err != nil {
		t.Fatalf("build count query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM players WHERE team_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInCondition(t *testing.T) {
	query, args, err := Select("id").From("players").Where(InInt64("team_id", []int64{1, 2})).ToSQL()
	if err != nil {
		t.Fatalf("build in query: %v", err)
	}
	if query != "SELECT id FROM players WHERE team_id IN ($1, $2)" || len(args) != 2 {
		t.Fatalf("unexpected in query: %s %+v", query, args)
	}

	query, args, err = Select("id").From("players").Where(InInt64("team_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build empty in query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected empty in query: %s %+v", query, args)
	}
}

func TestOrCondition(t *testing.T) {
	query, args, err := Select("id").
		From("games").
		Where(Or(Eq("home_team_id", int64(3)), Eq("away_team_id", int64(3)))).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build or query: %v", err)
	}

	wantQuery := "SELECT id FROM games WHERE (home_team_id = $1 OR away_team_id = $2) LIMIT 1"
	if query != wantQuery || len(args) != 2 {
		t.Fatalf("unexpected query: %s %+v", query, args)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := EscapeLike(`50%_a\b`); got != `50\%\_a\\b` {
		t.Fatalf("unexpected escape: %s", got)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("tricode", "name").
		Values("ARS", "Arsenal").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (tricode, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "ARS" || args[1] != "Arsenal" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "Arsenal FC").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(1))).
		Suffix("RETURNING updated_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Arsenal FC" || args[1] != int64(1) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("lineups").Where(Eq("id", int64(7))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM lineups WHERE id = $1" || len(args) != 1 {
		t.Fatalf("unexpected delete query: %s %+v", query, args)
	}

	if _, _, err := DeleteFrom("lineups").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

type teamModel struct {
	ID        int64     `db:"id,readonly"`
	Tricode   string    `db:"tricode"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at,readonly"`
	internal  string
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("teams", teamModel{ID: 9, Tricode: "ARS", Name: "Arsenal"}, "RETURNING id, created_at")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO teams (tricode, name) VALUES ($1, $2) RETURNING id, created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	b, err := UpdateModel("teams", &teamModel{ID: 9, Tricode: "ARS", Name: "Arsenal"})
	if err != nil {
		t.Fatalf("build update model: %v", err)
	}

	query, args, err := b.Where(Eq("id", int64(9))).ToSQL()
	if err != nil {
		t.Fatalf("build update model query: %v", err)
	}
	if query != "UPDATE teams SET tricode = $1, name = $2 WHERE id = $3" || len(args) != 3 {
		t.Fatalf("unexpected update model query: %s %+v", query, args)
	}
}

func TestQualifiedColumns(t *testing.T) {
	got := QualifiedColumns("t", teamModel{})
	want := []string{"t.id", "t.tricode", "t.name", "t.created_at"}
	if len(got) != len(want) {
		t.Fatalf("unexpected columns: %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected column %d: got=%s want=%s", i, got[i], want[i])
		}
	}
}
