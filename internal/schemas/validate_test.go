package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(ResumeSchemaPath)
	require.NotEmpty(t, path, "resume schema not found relative to test directory")
	return path
}

func TestValidateResumeBytes_ValidDocument(t *testing.T) {
	doc := []byte(`{
		"personalInfo": {"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com"},
		"summary": "Engineer.",
		"experience": [{"title": "Engineer", "company": "Acme", "current": true, "bullets": ["Built things", null]}],
		"skills": {"technical": ["Go"], "soft": []},
		"sectionOrder": ["personal", "experience"]
	}`)
	assert.NoError(t, ValidateResumeBytes(schemaPath(t), doc))
}

func TestValidateResumeBytes_MinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateResumeBytes(schemaPath(t), []byte(`{}`)))
}

func TestValidateResumeBytes_WrongFieldType(t *testing.T) {
	doc := []byte(`{"personalInfo": {"firstName": 42}}`)
	err := ValidateResumeBytes(schemaPath(t), doc)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "firstName")
}

func TestValidateResumeBytes_UnknownTopLevelField(t *testing.T) {
	doc := []byte(`{"hobbies": ["sailing"]}`)
	err := ValidateResumeBytes(schemaPath(t), doc)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateResumeBytes_UnknownNestedField(t *testing.T) {
	doc := []byte(`{"experience": [{"employer": "Acme"}]}`)
	err := ValidateResumeBytes(schemaPath(t), doc)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateResumeBytes_SchemaFileMissing(t *testing.T) {
	err := ValidateResumeBytes(filepath.Join(t.TempDir(), "nope.json"), []byte(`{}`))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "not found")
}

func TestValidateResumeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"summary": "hello"}`), 0o644))

	assert.NoError(t, ValidateResumeFile(schemaPath(t), path))

	_, missing := filepath.Split(path)
	err := ValidateResumeFile(schemaPath(t), filepath.Join(dir, "missing-"+missing))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestResolveSchemaPath_Unresolvable(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("no/such/schema.json"))
}
