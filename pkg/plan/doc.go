// Package plan reads, writes, summarizes and verifies imposition plans.
//
// # JSON Format
//
// Plans serialize as the [impose.Plan] struct tags describe:
//
//	{
//	  "scheme": "booklet",
//	  "sheets": [
//	    {
//	      "width": 1224, "height": 792,
//	      "pages": [
//	        {"source": null, "x": 0,   "y": 0, "width": 612, "height": 792, "rotation": 0},
//	        {"source": 0,    "x": 612, "y": 0, "width": 612, "height": 792, "rotation": 0}
//	      ]
//	    }
//	  ],
//	  "total_input_pages": 6,
//	  "adjusted_page_count": 8,
//	  "blanks_added": 2,
//	  "page_width": 612,
//	  "page_height": 792
//	}
//
// A null source marks a blank slot. [ReadJSON] runs [Verify] on every plan
// it decodes, so a plan read from disk is as trustworthy as one just built.
//
// # Verification
//
// [Verify] checks the properties every plan must hold: each source page
// appears exactly once, indexes are in range, all sheets share one size,
// rotations are 0 or 180, and the page counts add up.
package plan
