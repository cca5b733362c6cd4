package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// schema only uses types every supported driver accepts.
var schema = []struct {
	name string
	ddl  string
}{
	{"tools", `
		CREATE TABLE IF NOT EXISTS tools (
			id               VARCHAR(36)  NOT NULL PRIMARY KEY,
			tool_name        VARCHAR(255) NOT NULL,
			tool_description TEXT         NULL,
			website_url      VARCHAR(500) NULL,
			source_url       VARCHAR(500) NULL,
			created_at       TIMESTAMP    NOT NULL,
			updated_at       TIMESTAMP    NOT NULL
		)`},
	{"templates", `
		CREATE TABLE IF NOT EXISTS templates (
			id               VARCHAR(36)  NOT NULL PRIMARY KEY,
			template_name    VARCHAR(255) NOT NULL,
			template_content TEXT         NOT NULL,
			created_at       TIMESTAMP    NOT NULL,
			updated_at       TIMESTAMP    NOT NULL
		)`},
	{"founders", `
		CREATE TABLE IF NOT EXISTS founders (
			id                 VARCHAR(36)  NOT NULL PRIMARY KEY,
			founder_name       VARCHAR(255) NOT NULL,
			social_profile_url VARCHAR(500) NULL,
			tool_id            VARCHAR(36)  NULL,
			created_at         TIMESTAMP    NOT NULL,
			updated_at         TIMESTAMP    NOT NULL,
			FOREIGN KEY (tool_id) REFERENCES tools (id)
		)`},
	{"facebook_profiles", `
		CREATE TABLE IF NOT EXISTS facebook_profiles (
			id           VARCHAR(36)  NOT NULL PRIMARY KEY,
			profile_name VARCHAR(255) NOT NULL,
			template_id  VARCHAR(36)  NULL,
			created_at   TIMESTAMP    NOT NULL,
			updated_at   TIMESTAMP    NOT NULL,
			FOREIGN KEY (template_id) REFERENCES templates (id)
		)`},
	{"outreach_records", `
		CREATE TABLE IF NOT EXISTS outreach_records (
			id                VARCHAR(36) NOT NULL PRIMARY KEY,
			founder_id        VARCHAR(36) NOT NULL,
			tool_id           VARCHAR(36) NOT NULL,
			fb_profile_id     VARCHAR(36) NOT NULL,
			template_id       VARCHAR(36) NULL,
			generated_message TEXT        NULL,
			note              TEXT        NULL,
			status            VARCHAR(32) NOT NULL,
			created_at        TIMESTAMP   NOT NULL,
			updated_at        TIMESTAMP   NOT NULL,
			FOREIGN KEY (founder_id) REFERENCES founders (id),
			FOREIGN KEY (tool_id) REFERENCES tools (id),
			FOREIGN KEY (fb_profile_id) REFERENCES facebook_profiles (id),
			FOREIGN KEY (template_id) REFERENCES templates (id)
		)`},
	{"app_settings", `
		CREATE TABLE IF NOT EXISTS app_settings (
			setting_key   VARCHAR(64) NOT NULL PRIMARY KEY,
			setting_value TEXT        NOT NULL,
			updated_at    TIMESTAMP   NOT NULL
		)`},
}

// Migrate creates every table that does not exist yet.
func Migrate(db *sqlx.DB) error {
	for _, t := range schema {
		if _, err := db.Exec(t.ddl); err != nil {
			log.Errorf("[ERROR] Migrate (%s) DB error: %v", t.name, err)
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	log.Debugf("schema ready (%d tables)", len(schema))
	return nil
}
