// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import "github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"

// exceptionLabelMap lists every SQLSTATE under its condition name, in
// the order of the SQL standard's class listing. A few names appear
// more than once because distinct SQLSTATEs share a label; lookup order
// therefore matters and must not be changed.
var exceptionLabelMap = []struct {
	label string
	code  pgcode.Code
}{
	{"successful_completion", pgcode.MakeCode("00000")},
	{"warning", pgcode.MakeCode("01000")},
	{"dynamic_result_sets_returned", pgcode.MakeCode("0100C")},
	{"implicit_zero_bit_padding", pgcode.MakeCode("01008")},
	{"null_value_eliminated_in_set_function", pgcode.MakeCode("01003")},
	{"privilege_not_granted", pgcode.MakeCode("01007")},
	{"privilege_not_revoked", pgcode.MakeCode("01006")},
	{"string_data_right_truncation", pgcode.MakeCode("01004")},
	{"deprecated_feature", pgcode.MakeCode("01P01")},
	{"no_data", pgcode.MakeCode("02000")},
	{"no_additional_dynamic_result_sets_returned", pgcode.MakeCode("02001")},
	{"sql_statement_not_yet_complete", pgcode.MakeCode("03000")},
	{"connection_exception", pgcode.MakeCode("08000")},
	{"connection_does_not_exist", pgcode.MakeCode("08003")},
	{"connection_failure", pgcode.MakeCode("08006")},
	{"sqlclient_unable_to_establish_sqlconnection", pgcode.MakeCode("08001")},
	{"sqlserver_rejected_establishment_of_sqlconnection", pgcode.MakeCode("08004")},
	{"transaction_resolution_unknown", pgcode.MakeCode("08007")},
	{"protocol_violation", pgcode.MakeCode("08P01")},
	{"triggered_action_exception", pgcode.MakeCode("09000")},
	{"feature_not_supported", pgcode.MakeCode("0A000")},
	{"invalid_transaction_initiation", pgcode.MakeCode("0B000")},
	{"locator_exception", pgcode.MakeCode("0F000")},
	{"invalid_locator_specification", pgcode.MakeCode("0F001")},
	{"invalid_grantor", pgcode.MakeCode("0L000")},
	{"invalid_grant_operation", pgcode.MakeCode("0LP01")},
	{"invalid_role_specification", pgcode.MakeCode("0P000")},
	{"diagnostics_exception", pgcode.MakeCode("0Z000")},
	{"stacked_diagnostics_accessed_without_active_handler", pgcode.MakeCode("0Z002")},
	{"case_not_found", pgcode.MakeCode("20000")},
	{"cardinality_violation", pgcode.MakeCode("21000")},
	{"data_exception", pgcode.MakeCode("22000")},
	{"array_subscript_error", pgcode.MakeCode("2202E")},
	{"character_not_in_repertoire", pgcode.MakeCode("22021")},
	{"datetime_field_overflow", pgcode.MakeCode("22008")},
	{"division_by_zero", pgcode.MakeCode("22012")},
	{"error_in_assignment", pgcode.MakeCode("22005")},
	{"escape_character_conflict", pgcode.MakeCode("2200B")},
	{"indicator_overflow", pgcode.MakeCode("22022")},
	{"interval_field_overflow", pgcode.MakeCode("22015")},
	{"invalid_argument_for_logarithm", pgcode.MakeCode("2201E")},
	{"invalid_argument_for_ntile_function", pgcode.MakeCode("22014")},
	{"invalid_argument_for_nth_value_function", pgcode.MakeCode("22016")},
	{"invalid_argument_for_power_function", pgcode.MakeCode("2201F")},
	{"invalid_argument_for_width_bucket_function", pgcode.MakeCode("2201G")},
	{"invalid_character_value_for_cast", pgcode.MakeCode("22018")},
	{"invalid_datetime_format", pgcode.MakeCode("22007")},
	{"invalid_escape_character", pgcode.MakeCode("22019")},
	{"invalid_escape_octet", pgcode.MakeCode("2200D")},
	{"invalid_escape_sequence", pgcode.MakeCode("22025")},
	{"nonstandard_use_of_escape_character", pgcode.MakeCode("22P06")},
	{"invalid_indicator_parameter_value", pgcode.MakeCode("22010")},
	{"invalid_parameter_value", pgcode.MakeCode("22023")},
	{"invalid_preceding_or_following_size", pgcode.MakeCode("22013")},
	{"invalid_regular_expression", pgcode.MakeCode("2201B")},
	{"invalid_row_count_in_limit_clause", pgcode.MakeCode("2201W")},
	{"invalid_row_count_in_result_offset_clause", pgcode.MakeCode("2201X")},
	{"invalid_tablesample_argument", pgcode.MakeCode("2202H")},
	{"invalid_tablesample_repeat", pgcode.MakeCode("2202G")},
	{"invalid_time_zone_displacement_value", pgcode.MakeCode("22009")},
	{"invalid_use_of_escape_character", pgcode.MakeCode("2200C")},
	{"most_specific_type_mismatch", pgcode.MakeCode("2200G")},
	{"null_value_not_allowed", pgcode.MakeCode("22004")},
	{"null_value_no_indicator_parameter", pgcode.MakeCode("22002")},
	{"numeric_value_out_of_range", pgcode.MakeCode("22003")},
	{"sequence_generator_limit_exceeded", pgcode.MakeCode("2200H")},
	{"string_data_length_mismatch", pgcode.MakeCode("22026")},
	{"string_data_right_truncation", pgcode.MakeCode("22001")},
	{"substring_error", pgcode.MakeCode("22011")},
	{"trim_error", pgcode.MakeCode("22027")},
	{"unterminated_c_string", pgcode.MakeCode("22024")},
	{"zero_length_character_string", pgcode.MakeCode("2200F")},
	{"floating_point_exception", pgcode.MakeCode("22P01")},
	{"invalid_text_representation", pgcode.MakeCode("22P02")},
	{"invalid_binary_representation", pgcode.MakeCode("22P03")},
	{"bad_copy_file_format", pgcode.MakeCode("22P04")},
	{"untranslatable_character", pgcode.MakeCode("22P05")},
	{"not_an_xml_document", pgcode.MakeCode("2200L")},
	{"invalid_xml_document", pgcode.MakeCode("2200M")},
	{"invalid_xml_content", pgcode.MakeCode("2200N")},
	{"invalid_xml_comment", pgcode.MakeCode("2200S")},
	{"invalid_xml_processing_instruction", pgcode.MakeCode("2200T")},
	{"duplicate_json_object_key_value", pgcode.MakeCode("22030")},
	{"invalid_argument_for_sql_json_datetime_function", pgcode.MakeCode("22031")},
	{"invalid_json_text", pgcode.MakeCode("22032")},
	{"invalid_sql_json_subscript", pgcode.MakeCode("22033")},
	{"more_than_one_sql_json_item", pgcode.MakeCode("22034")},
	{"no_sql_json_item", pgcode.MakeCode("22035")},
	{"non_numeric_sql_json_item", pgcode.MakeCode("22036")},
	{"non_unique_keys_in_a_json_object", pgcode.MakeCode("22037")},
	{"singleton_sql_json_item_required", pgcode.MakeCode("22038")},
	{"sql_json_array_not_found", pgcode.MakeCode("22039")},
	{"sql_json_member_not_found", pgcode.MakeCode("2203A")},
	{"sql_json_number_not_found", pgcode.MakeCode("2203B")},
	{"sql_json_object_not_found", pgcode.MakeCode("2203C")},
	{"too_many_json_array_elements", pgcode.MakeCode("2203D")},
	{"too_many_json_object_members", pgcode.MakeCode("2203E")},
	{"sql_json_scalar_required", pgcode.MakeCode("2203F")},
	{"sql_json_item_cannot_be_cast_to_target_type", pgcode.MakeCode("2203G")},
	{"integrity_constraint_violation", pgcode.MakeCode("23000")},
	{"restrict_violation", pgcode.MakeCode("23001")},
	{"not_null_violation", pgcode.MakeCode("23502")},
	{"foreign_key_violation", pgcode.MakeCode("23503")},
	{"unique_violation", pgcode.MakeCode("23505")},
	{"check_violation", pgcode.MakeCode("23514")},
	{"exclusion_violation", pgcode.MakeCode("23P01")},
	{"invalid_cursor_state", pgcode.MakeCode("24000")},
	{"invalid_transaction_state", pgcode.MakeCode("25000")},
	{"active_sql_transaction", pgcode.MakeCode("25001")},
	{"branch_transaction_already_active", pgcode.MakeCode("25002")},
	{"held_cursor_requires_same_isolation_level", pgcode.MakeCode("25008")},
	{"inappropriate_access_mode_for_branch_transaction", pgcode.MakeCode("25003")},
	{"inappropriate_isolation_level_for_branch_transaction", pgcode.MakeCode("25004")},
	{"no_active_sql_transaction_for_branch_transaction", pgcode.MakeCode("25005")},
	{"read_only_sql_transaction", pgcode.MakeCode("25006")},
	{"schema_and_data_statement_mixing_not_supported", pgcode.MakeCode("25007")},
	{"no_active_sql_transaction", pgcode.MakeCode("25P01")},
	{"in_failed_sql_transaction", pgcode.MakeCode("25P02")},
	{"idle_in_transaction_session_timeout", pgcode.MakeCode("25P03")},
	{"invalid_sql_statement_name", pgcode.MakeCode("26000")},
	{"triggered_data_change_violation", pgcode.MakeCode("27000")},
	{"invalid_authorization_specification", pgcode.MakeCode("28000")},
	{"invalid_password", pgcode.MakeCode("28P01")},
	{"dependent_privilege_descriptors_still_exist", pgcode.MakeCode("2B000")},
	{"dependent_objects_still_exist", pgcode.MakeCode("2BP01")},
	{"invalid_transaction_termination", pgcode.MakeCode("2D000")},
	{"sql_routine_exception", pgcode.MakeCode("2F000")},
	{"function_executed_no_return_statement", pgcode.MakeCode("2F005")},
	{"modifying_sql_data_not_permitted", pgcode.MakeCode("2F002")},
	{"prohibited_sql_statement_attempted", pgcode.MakeCode("2F003")},
	{"reading_sql_data_not_permitted", pgcode.MakeCode("2F004")},
	{"invalid_cursor_name", pgcode.MakeCode("34000")},
	{"external_routine_exception", pgcode.MakeCode("38000")},
	{"containing_sql_not_permitted", pgcode.MakeCode("38001")},
	{"modifying_sql_data_not_permitted", pgcode.MakeCode("38002")},
	{"prohibited_sql_statement_attempted", pgcode.MakeCode("38003")},
	{"reading_sql_data_not_permitted", pgcode.MakeCode("38004")},
	{"external_routine_invocation_exception", pgcode.MakeCode("39000")},
	{"invalid_sqlstate_returned", pgcode.MakeCode("39001")},
	{"null_value_not_allowed", pgcode.MakeCode("39004")},
	{"trigger_protocol_violated", pgcode.MakeCode("39P01")},
	{"srf_protocol_violated", pgcode.MakeCode("39P02")},
	{"event_trigger_protocol_violated", pgcode.MakeCode("39P03")},
	{"savepoint_exception", pgcode.MakeCode("3B000")},
	{"invalid_savepoint_specification", pgcode.MakeCode("3B001")},
	{"invalid_catalog_name", pgcode.MakeCode("3D000")},
	{"invalid_schema_name", pgcode.MakeCode("3F000")},
	{"transaction_rollback", pgcode.MakeCode("40000")},
	{"transaction_integrity_constraint_violation", pgcode.MakeCode("40002")},
	{"serialization_failure", pgcode.MakeCode("40001")},
	{"statement_completion_unknown", pgcode.MakeCode("40003")},
	{"deadlock_detected", pgcode.MakeCode("40P01")},
	{"syntax_error_or_access_rule_violation", pgcode.MakeCode("42000")},
	{"syntax_error", pgcode.MakeCode("42601")},
	{"insufficient_privilege", pgcode.MakeCode("42501")},
	{"cannot_coerce", pgcode.MakeCode("42846")},
	{"grouping_error", pgcode.MakeCode("42803")},
	{"windowing_error", pgcode.MakeCode("42P20")},
	{"invalid_recursion", pgcode.MakeCode("42P19")},
	{"invalid_foreign_key", pgcode.MakeCode("42830")},
	{"invalid_name", pgcode.MakeCode("42602")},
	{"name_too_long", pgcode.MakeCode("42622")},
	{"reserved_name", pgcode.MakeCode("42939")},
	{"datatype_mismatch", pgcode.MakeCode("42804")},
	{"indeterminate_datatype", pgcode.MakeCode("42P18")},
	{"collation_mismatch", pgcode.MakeCode("42P21")},
	{"indeterminate_collation", pgcode.MakeCode("42P22")},
	{"wrong_object_type", pgcode.MakeCode("42809")},
	{"generated_always", pgcode.MakeCode("428C9")},
	{"undefined_column", pgcode.MakeCode("42703")},
	{"undefined_function", pgcode.MakeCode("42883")},
	{"undefined_table", pgcode.MakeCode("42P01")},
	{"undefined_parameter", pgcode.MakeCode("42P02")},
	{"undefined_object", pgcode.MakeCode("42704")},
	{"duplicate_column", pgcode.MakeCode("42701")},
	{"duplicate_cursor", pgcode.MakeCode("42P03")},
	{"duplicate_database", pgcode.MakeCode("42P04")},
	{"duplicate_function", pgcode.MakeCode("42723")},
	{"duplicate_prepared_statement", pgcode.MakeCode("42P05")},
	{"duplicate_schema", pgcode.MakeCode("42P06")},
	{"duplicate_table", pgcode.MakeCode("42P07")},
	{"duplicate_alias", pgcode.MakeCode("42712")},
	{"duplicate_object", pgcode.MakeCode("42710")},
	{"ambiguous_column", pgcode.MakeCode("42702")},
	{"ambiguous_function", pgcode.MakeCode("42725")},
	{"ambiguous_parameter", pgcode.MakeCode("42P08")},
	{"ambiguous_alias", pgcode.MakeCode("42P09")},
	{"invalid_column_reference", pgcode.MakeCode("42P10")},
	{"invalid_column_definition", pgcode.MakeCode("42611")},
	{"invalid_cursor_definition", pgcode.MakeCode("42P11")},
	{"invalid_database_definition", pgcode.MakeCode("42P12")},
	{"invalid_function_definition", pgcode.MakeCode("42P13")},
	{"invalid_prepared_statement_definition", pgcode.MakeCode("42P14")},
	{"invalid_schema_definition", pgcode.MakeCode("42P15")},
	{"invalid_table_definition", pgcode.MakeCode("42P16")},
	{"invalid_object_definition", pgcode.MakeCode("42P17")},
	{"with_check_option_violation", pgcode.MakeCode("44000")},
	{"insufficient_resources", pgcode.MakeCode("53000")},
	{"disk_full", pgcode.MakeCode("53100")},
	{"out_of_memory", pgcode.MakeCode("53200")},
	{"too_many_connections", pgcode.MakeCode("53300")},
	{"configuration_limit_exceeded", pgcode.MakeCode("53400")},
	{"program_limit_exceeded", pgcode.MakeCode("54000")},
	{"statement_too_complex", pgcode.MakeCode("54001")},
	{"too_many_columns", pgcode.MakeCode("54011")},
	{"too_many_arguments", pgcode.MakeCode("54023")},
	{"object_not_in_prerequisite_state", pgcode.MakeCode("55000")},
	{"object_in_use", pgcode.MakeCode("55006")},
	{"cant_change_runtime_param", pgcode.MakeCode("55P02")},
	{"lock_not_available", pgcode.MakeCode("55P03")},
	{"unsafe_new_enum_value_usage", pgcode.MakeCode("55P04")},
	{"operator_intervention", pgcode.MakeCode("57000")},
	{"query_canceled", pgcode.MakeCode("57014")},
	{"admin_shutdown", pgcode.MakeCode("57P01")},
	{"crash_shutdown", pgcode.MakeCode("57P02")},
	{"cannot_connect_now", pgcode.MakeCode("57P03")},
	{"database_dropped", pgcode.MakeCode("57P04")},
	{"idle_session_timeout", pgcode.MakeCode("57P05")},
	{"system_error", pgcode.MakeCode("58000")},
	{"io_error", pgcode.MakeCode("58030")},
	{"undefined_file", pgcode.MakeCode("58P01")},
	{"duplicate_file", pgcode.MakeCode("58P02")},
	{"snapshot_too_old", pgcode.MakeCode("72000")},
	{"config_file_error", pgcode.MakeCode("F0000")},
	{"lock_file_exists", pgcode.MakeCode("F0001")},
	{"fdw_error", pgcode.MakeCode("HV000")},
	{"fdw_column_name_not_found", pgcode.MakeCode("HV005")},
	{"fdw_dynamic_parameter_value_needed", pgcode.MakeCode("HV002")},
	{"fdw_function_sequence_error", pgcode.MakeCode("HV010")},
	{"fdw_inconsistent_descriptor_information", pgcode.MakeCode("HV021")},
	{"fdw_invalid_attribute_value", pgcode.MakeCode("HV024")},
	{"fdw_invalid_column_name", pgcode.MakeCode("HV007")},
	{"fdw_invalid_column_number", pgcode.MakeCode("HV008")},
	{"fdw_invalid_data_type", pgcode.MakeCode("HV004")},
	{"fdw_invalid_data_type_descriptors", pgcode.MakeCode("HV006")},
	{"fdw_invalid_descriptor_field_identifier", pgcode.MakeCode("HV091")},
	{"fdw_invalid_handle", pgcode.MakeCode("HV00B")},
	{"fdw_invalid_option_index", pgcode.MakeCode("HV00C")},
	{"fdw_invalid_option_name", pgcode.MakeCode("HV00D")},
	{"fdw_invalid_string_length_or_buffer_length", pgcode.MakeCode("HV090")},
	{"fdw_invalid_string_format", pgcode.MakeCode("HV00A")},
	{"fdw_invalid_use_of_null_pointer", pgcode.MakeCode("HV009")},
	{"fdw_too_many_handles", pgcode.MakeCode("HV014")},
	{"fdw_out_of_memory", pgcode.MakeCode("HV001")},
	{"fdw_no_schemas", pgcode.MakeCode("HV00P")},
	{"fdw_option_name_not_found", pgcode.MakeCode("HV00J")},
	{"fdw_reply_handle", pgcode.MakeCode("HV00K")},
	{"fdw_schema_not_found", pgcode.MakeCode("HV00Q")},
	{"fdw_table_not_found", pgcode.MakeCode("HV00R")},
	{"fdw_unable_to_create_execution", pgcode.MakeCode("HV00L")},
	{"fdw_unable_to_create_reply", pgcode.MakeCode("HV00M")},
	{"fdw_unable_to_establish_connection", pgcode.MakeCode("HV00N")},
	{"plpgsql_error", pgcode.MakeCode("P0000")},
	{"raise_exception", pgcode.MakeCode("P0001")},
	{"no_data_found", pgcode.MakeCode("P0002")},
	{"too_many_rows", pgcode.MakeCode("P0003")},
	{"assert_failure", pgcode.MakeCode("P0004")},
	{"internal_error", pgcode.MakeCode("XX000")},
	{"data_corrupted", pgcode.MakeCode("XX001")},
	{"index_corrupted", pgcode.MakeCode("XX002")},
}
