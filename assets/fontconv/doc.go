/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontconv converts a configured list of TrueType fonts from a staging directory into WOFF2
// files, reporting per file progress and an aggregate summary. A file that is missing or fails to
// convert never aborts the batch; only a missing staging directory does.
package fontconv
