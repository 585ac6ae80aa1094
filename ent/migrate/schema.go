// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "operator", "agent", "worker"}, Default: "agent"},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_role",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
		},
	}
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "attachment_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/octet-stream"},
		{Name: "size", Type: field.TypeInt64},
		{Name: "sha256", Type: field.TypeString},
		{Name: "blob", Type: field.TypeBytes},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeString},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_intents_attachments",
				Columns:    []*schema.Column{AttachmentsColumns[9]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_intent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[9], AttachmentsColumns[8]},
			},
		},
	}
	// CostEntriesColumns holds the columns for the "cost_entries" table.
	CostEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "cost_type", Type: field.TypeEnum, Enums: []string{"compute", "api", "tokens", "storage", "other"}, Default: "other"},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeString},
	}
	// CostEntriesTable holds the schema information for the "cost_entries" table.
	CostEntriesTable = &schema.Table{
		Name:       "cost_entries",
		Columns:    CostEntriesColumns,
		PrimaryKey: []*schema.Column{CostEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cost_entries_intents_costs",
				Columns:    []*schema.Column{CostEntriesColumns[7]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "costentry_intent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CostEntriesColumns[7], CostEntriesColumns[6]},
			},
			{
				Name:    "costentry_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CostEntriesColumns[1]},
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "credential_id", Type: field.TypeString, Unique: true},
		{Name: "auth_type", Type: field.TypeEnum, Enums: []string{"api_key", "bearer", "basic", "oauth2", "webhook"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "secret", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
	}
	// FailureRecordsColumns holds the columns for the "failure_records" table.
	FailureRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "error_type", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647},
		{Name: "recoverable", Type: field.TypeBool},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeString},
	}
	// FailureRecordsTable holds the schema information for the "failure_records" table.
	FailureRecordsTable = &schema.Table{
		Name:       "failure_records",
		Columns:    FailureRecordsColumns,
		PrimaryKey: []*schema.Column{FailureRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "failure_records_intents_failures",
				Columns:    []*schema.Column{FailureRecordsColumns[7]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "failurerecord_intent_id_attempt_number",
				Unique:  false,
				Columns: []*schema.Column{FailureRecordsColumns[7], FailureRecordsColumns[5]},
			},
		},
	}
	// IntentsColumns holds the columns for the "intents" table.
	IntentsColumns = []*schema.Column{
		{Name: "intent_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "creator_agent_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "blocked", "completed", "cancelled", "failed"}, Default: "pending"},
		{Name: "state", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_policy", Type: field.TypeJSON, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "aggregate", Type: field.TypeJSON, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IntentsTable holds the schema information for the "intents" table.
	IntentsTable = &schema.Table{
		Name:       "intents",
		Columns:    IntentsColumns,
		PrimaryKey: []*schema.Column{IntentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intent_status",
				Unique:  false,
				Columns: []*schema.Column{IntentsColumns[4]},
			},
			{
				Name:    "intent_parent_id",
				Unique:  false,
				Columns: []*schema.Column{IntentsColumns[8]},
			},
			{
				Name:    "intent_creator_agent_id",
				Unique:  false,
				Columns: []*schema.Column{IntentsColumns[3]},
			},
			{
				Name:    "intent_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IntentsColumns[4], IntentsColumns[14]},
			},
			{
				Name:    "intent_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{IntentsColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "idempotency_key IS NOT NULL",
				},
			},
		},
	}
	// IntentEventsColumns holds the columns for the "intent_events" table.
	IntentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_agent_id", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt64},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeString},
	}
	// IntentEventsTable holds the schema information for the "intent_events" table.
	IntentEventsTable = &schema.Table{
		Name:       "intent_events",
		Columns:    IntentEventsColumns,
		PrimaryKey: []*schema.Column{IntentEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "intent_events_intents_events",
				Columns:    []*schema.Column{IntentEventsColumns[6]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "intentevent_intent_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{IntentEventsColumns[6], IntentEventsColumns[3]},
			},
			{
				Name:    "intentevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{IntentEventsColumns[1]},
			},
			{
				Name:    "intentevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{IntentEventsColumns[5]},
			},
		},
	}
	// LeasesColumns holds the columns for the "leases" table.
	LeasesColumns = []*schema.Column{
		{Name: "lease_id", Type: field.TypeString, Unique: true},
		{Name: "scope", Type: field.TypeString},
		{Name: "holder_agent_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "released", "expired"}, Default: "active"},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeString},
	}
	// LeasesTable holds the schema information for the "leases" table.
	LeasesTable = &schema.Table{
		Name:       "leases",
		Columns:    LeasesColumns,
		PrimaryKey: []*schema.Column{LeasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leases_intents_leases",
				Columns:    []*schema.Column{LeasesColumns[6]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lease_intent_id_scope",
				Unique:  true,
				Columns: []*schema.Column{LeasesColumns[6], LeasesColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'active'",
				},
			},
			{
				Name:    "lease_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[3], LeasesColumns[5]},
			},
			{
				Name:    "lease_holder_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LeasesColumns[2]},
			},
		},
	}
	// PortfoliosColumns holds the columns for the "portfolios" table.
	PortfoliosColumns = []*schema.Column{
		{Name: "portfolio_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "creator_agent_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "cancelled"}, Default: "active"},
		{Name: "governance_policy", Type: field.TypeJSON, Nullable: true},
		{Name: "aggregate", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PortfoliosTable holds the schema information for the "portfolios" table.
	PortfoliosTable = &schema.Table{
		Name:       "portfolios",
		Columns:    PortfoliosColumns,
		PrimaryKey: []*schema.Column{PortfoliosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "portfolio_status",
				Unique:  false,
				Columns: []*schema.Column{PortfoliosColumns[3]},
			},
		},
	}
	// PortfolioMembersColumns holds the columns for the "portfolio_members" table.
	PortfolioMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"primary", "member", "dependency"}, Default: "member"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "intent_id", Type: field.TypeString},
		{Name: "portfolio_id", Type: field.TypeString},
	}
	// PortfolioMembersTable holds the schema information for the "portfolio_members" table.
	PortfolioMembersTable = &schema.Table{
		Name:       "portfolio_members",
		Columns:    PortfolioMembersColumns,
		PrimaryKey: []*schema.Column{PortfolioMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "portfolio_members_intents_memberships",
				Columns:    []*schema.Column{PortfolioMembersColumns[4]},
				RefColumns: []*schema.Column{IntentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "portfolio_members_portfolios_members",
				Columns:    []*schema.Column{PortfolioMembersColumns[5]},
				RefColumns: []*schema.Column{PortfoliosColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "portfoliomember_portfolio_id_intent_id",
				Unique:  true,
				Columns: []*schema.Column{PortfolioMembersColumns[5], PortfolioMembersColumns[4]},
			},
			{
				Name:    "portfoliomember_portfolio_id_priority",
				Unique:  false,
				Columns: []*schema.Column{PortfolioMembersColumns[5], PortfolioMembersColumns[2]},
			},
		},
	}
	// ToolDefinitionsColumns holds the columns for the "tool_definitions" table.
	ToolDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "adapter", Type: field.TypeEnum, Enums: []string{"rest", "oauth2", "webhook"}},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ToolDefinitionsTable holds the schema information for the "tool_definitions" table.
	ToolDefinitionsTable = &schema.Table{
		Name:       "tool_definitions",
		Columns:    ToolDefinitionsColumns,
		PrimaryKey: []*schema.Column{ToolDefinitionsColumns[0]},
	}
	// ToolGrantsColumns holds the columns for the "tool_grants" table.
	ToolGrantsColumns = []*schema.Column{
		{Name: "grant_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "credential_id", Type: field.TypeString},
		{Name: "allowed_hosts", Type: field.TypeJSON, Nullable: true},
		{Name: "rate_limit", Type: field.TypeInt, Default: 0},
		{Name: "rate_window_seconds", Type: field.TypeInt, Default: 60},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolGrantsTable holds the schema information for the "tool_grants" table.
	ToolGrantsTable = &schema.Table{
		Name:       "tool_grants",
		Columns:    ToolGrantsColumns,
		PrimaryKey: []*schema.Column{ToolGrantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolgrant_agent_id_tool_name",
				Unique:  true,
				Columns: []*schema.Column{ToolGrantsColumns[1], ToolGrantsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AttachmentsTable,
		CostEntriesTable,
		CredentialsTable,
		FailureRecordsTable,
		IntentsTable,
		IntentEventsTable,
		LeasesTable,
		PortfoliosTable,
		PortfolioMembersTable,
		ToolDefinitionsTable,
		ToolGrantsTable,
	}
)

func init() {
	AttachmentsTable.ForeignKeys[0].RefTable = IntentsTable
	CostEntriesTable.ForeignKeys[0].RefTable = IntentsTable
	FailureRecordsTable.ForeignKeys[0].RefTable = IntentsTable
	IntentEventsTable.ForeignKeys[0].RefTable = IntentsTable
	LeasesTable.ForeignKeys[0].RefTable = IntentsTable
	PortfolioMembersTable.ForeignKeys[0].RefTable = IntentsTable
	PortfolioMembersTable.ForeignKeys[1].RefTable = PortfoliosTable
}
