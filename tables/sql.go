package tables

import (
	"database/sql"
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/zorros/zorros"
)

// text gota reads as a missing value
const missing = "NaN"

/*
ReadSQL runs the query and loads its result set into a dataframe.
Column types are detected from the values, NULLs become missing values.
*/
func ReadSQL(db *sql.DB, query string, args ...interface{}) (dataframe.DataFrame, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return dataframe.DataFrame{Err: err}, zorros.Wrapf(err, "query failed: %v", err.Error())
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return dataframe.DataFrame{Err: err}, zorros.Trace(err)
	}
	records := [][]string{names}
	values := make([]sql.NullString, len(names))
	dest := make([]interface{}, len(names))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return dataframe.DataFrame{Err: err}, zorros.Trace(err)
		}
		rec := make([]string, len(names))
		for i, v := range values {
			rec[i] = missing
			if v.Valid {
				rec[i] = v.String
			}
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return dataframe.DataFrame{Err: err}, zorros.Trace(err)
	}
	if len(records) == 1 {
		err = zorros.Errorf("query returned no rows")
		return dataframe.DataFrame{Err: err}, err
	}
	df := dataframe.LoadRecords(records, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return df, zorros.Wrapf(df.Err, "failed to load query result: %v", df.Err.Error())
	}
	return df, nil
}
