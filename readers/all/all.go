package all

import (
	// Import all the readers so they register themselves
	_ "github.com/Greg89/PythonGenerateSQL/readers/csv"
	_ "github.com/Greg89/PythonGenerateSQL/readers/excel"
	_ "github.com/Greg89/PythonGenerateSQL/readers/html"
	_ "github.com/Greg89/PythonGenerateSQL/readers/json"
	_ "github.com/Greg89/PythonGenerateSQL/readers/txt"
	_ "github.com/Greg89/PythonGenerateSQL/readers/xml"
)
