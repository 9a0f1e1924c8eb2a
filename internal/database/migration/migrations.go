package migration

// migrations are applied in order; versions are append-only.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_core_tables",
		SQL: `
CREATE TABLE IF NOT EXISTS users (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	email      TEXT NOT NULL,
	password   TEXT NOT NULL,
	first_name TEXT NOT NULL DEFAULT '',
	last_name  TEXT NOT NULL DEFAULT '',
	role       TEXT NOT NULL DEFAULT '',
	bio        TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email));

CREATE TABLE IF NOT EXISTS skills (
	id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	direction   TEXT NOT NULL,
	level       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS matches (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	teacher_id BIGINT NOT NULL REFERENCES users(id),
	learner_id BIGINT NOT NULL REFERENCES users(id),
	skill_id   BIGINT NOT NULL REFERENCES skills(id),
	status     TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS messages (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	match_id   BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
	sender_id  BIGINT NOT NULL REFERENCES users(id),
	content    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS messages_match_created_idx ON messages (match_id, created_at, id);
`,
	},
	{
		Version: 2,
		Name:    "create_expense_tables",
		SQL: `
CREATE TABLE IF NOT EXISTS expenses (
	id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	user_id      BIGINT NOT NULL REFERENCES users(id),
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	amount       NUMERIC(12,2) NOT NULL,
	category     TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'pending',
	submitted_at TIMESTAMPTZ,
	approved_by  BIGINT REFERENCES users(id),
	approved_at  TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS approvals (
	id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	expense_id  BIGINT NOT NULL REFERENCES expenses(id),
	approver_id BIGINT NOT NULL REFERENCES users(id),
	status      TEXT NOT NULL,
	comments    TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS teams (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name       TEXT NOT NULL,
	manager_id BIGINT NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS team_members (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	team_id    BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
	user_id    BIGINT NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (team_id, user_id)
);
`,
	},
}
