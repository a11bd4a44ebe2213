package mcpserver

// LogFormatContract describes the canonical log entry format that
// LLM consumers should follow when recording activities.
const LogFormatContract = `# Daybook Log Entry Contract

Every activity logged in daybook MUST follow this structure.

## Structure

` + "```" + `json
{
  "type": "workout",                      // REQUIRED - one of the known activity types
  "datetime": "2024-01-17T08:00:00Z",     // set automatically; ISO 8601 when provided
  "duration": "30m",                      // OPTIONAL - duration token
  "message": "morning run"                // OPTIONAL - free-form note
}
` + "```" + `

## Rules

1. **` + "`" + `type` + "`" + ` is required.** Allowed values: ` + "`" + `meditated` + "`" + `, ` + "`" + `ankied` + "`" + `,
   ` + "`" + `eye-patch` + "`" + `, ` + "`" + `workout` + "`" + `, ` + "`" + `custom` + "`" + `. Use ` + "`" + `custom` + "`" + ` for anything
   without a dedicated type and describe it in ` + "`" + `message` + "`" + `.
2. **Duration tokens** are a whole number immediately followed by a unit letter:
   ` + "`" + `h` + "`" + ` (hours), ` + "`" + `m` + "`" + ` (minutes), or ` + "`" + `s` + "`" + ` (seconds). Examples: ` + "`" + `2h` + "`" + `, ` + "`" + `45m` + "`" + `, ` + "`" + `90s` + "`" + `.
   Compound tokens like ` + "`" + `1h30m` + "`" + ` are NOT accepted; pick the closest single unit.
3. **Datetime** defaults to the moment of submission. Provide it only when
   back-filling, as an ISO 8601 timestamp or a plain ` + "`" + `YYYY-MM-DD` + "`" + ` date.
4. **Messages** are short single-line notes. Summaries show only the most
   recent non-empty message per type, so keep them self-contained.

## Example session

- ` + "`" + `log_activity(type="meditated", duration="10m")` + "`" + `
- ` + "`" + `log_activity(type="workout", duration="1h", message="legs")` + "`" + `
- ` + "`" + `today_summary()` + "`" + ` reports per-type counts, total seconds, and last messages.
`
