package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open("sqlite", "file:schema_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	conn.SetMaxOpenConns(1)
	return conn
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openMemoryDB(t)
	defer conn.Close()

	// Creating twice must not error - startup runs this unconditionally
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, "sqlite"); err != nil {
			t.Fatalf("CreateSchema run %d failed: %v", i+1, err)
		}
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&count); err != nil {
		t.Fatalf("votes table missing after CreateSchema: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty votes table, got %d rows", count)
	}
}

func TestCreateSchema_UnknownType(t *testing.T) {
	conn := openMemoryDB(t)
	defer conn.Close()

	if err := CreateSchema(conn, "oracle"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestOpen_UnknownType(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
