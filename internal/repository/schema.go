package repository

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	language TEXT NOT NULL DEFAULT 'hi',
	location TEXT NOT NULL DEFAULT '',
	farm_size REAL,
	primary_crops TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL,
	title_hindi TEXT NOT NULL DEFAULT '',
	title_local TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	description_hindi TEXT NOT NULL DEFAULT '',
	description_local TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	priority TEXT NOT NULL DEFAULT 'medium',
	crop_type TEXT NOT NULL DEFAULT '',
	due_date TEXT NOT NULL,
	due_time TEXT NOT NULL DEFAULT '',
	completed BOOLEAN NOT NULL DEFAULT 0,
	completed_at DATETIME,
	template_slot INTEGER,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE (user_id, due_date, template_slot)
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks(user_id, due_date);
`
