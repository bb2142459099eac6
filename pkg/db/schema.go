package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Pipeline runs: one row per fetch/rebuild invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL,                 -- fetch, rebuild
    started_at TIMESTAMP NOT NULL,
    articles_added INTEGER DEFAULT 0,
    total_articles INTEGER DEFAULT 0,
    llm_used BOOLEAN DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

-- Per-source outcome within a run
CREATE TABLE IF NOT EXISTS run_sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    source_name TEXT NOT NULL,
    fetched INTEGER DEFAULT 0,
    error TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_sources_run ON run_sources(run_id);

-- Review runs: one row per audit with the level distribution
CREATE TABLE IF NOT EXISTS review_runs (
    review_id INTEGER PRIMARY KEY AUTOINCREMENT,
    reviewed_at TIMESTAMP NOT NULL,
    total_articles INTEGER NOT NULL,
    excellent INTEGER DEFAULT 0,
    good INTEGER DEFAULT 0,
    fair INTEGER DEFAULT 0,
    needs_improve INTEGER DEFAULT 0
);
`
