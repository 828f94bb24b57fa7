/*
Package catalog loads the polish collection from its spreadsheet sources and
tracks which numbers have already been presented.

# Sources

Three tabular sources, all xlsx workbooks read with excelize:

  - collection workbook, sheet "Original_Swatches": the full catalog, one
    polish per row, columns matched by header name. Missing optional
    columns fill with empty strings.
  - collection workbook, sheet "Sheet1", columns F:N: the personal wear
    history. Rows without a parseable date are dropped; an empty brand
    reads as "Unknown".
  - selections workbook, sheet "Selections": previously presented numbers,
    one per row.

A missing file or sheet returns empty data wrapped in ErrDataUnavailable,
so callers can tell "empty catalog" from "catalog failed to load" and still
degrade gracefully.

# Write-Back

AppendSelections appends a recorded batch's numbers to the Selections sheet
so the used set survives restarts.

# Runtime State

Store owns the loaded data plus the used set, guarded for concurrent
requests. Construct it once at startup with Load and inject it into the
handlers.
*/
package catalog
