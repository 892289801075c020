// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(projectsGuide)
	app.Add(resultFilesGuide)
	app.Add(sitesGuide)
	app.Add(styleFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
A roadmap model run writes its results as many files into a result folder. By
default, rmplot commands read each file from the result folder using a fixed
file name (see "rmplot help result-files"). A project file can be used to
change the path of some of the files, for example, to read a table from an
Excel workbook, or to use a file that is not in the result folder.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# rmplot project files
	dataset	path
	retro-loc-capacity	drcp_d_act.xlsx
	new-loc-capacity	capacity.xlsx:new
	sites	../plants.csv

Relative paths are relative to the result folder. If the path is an Excel
workbook (with the ".xlsx" extension), the first sheet of the workbook is read.
To read a different sheet, add the sheet name after a colon.

The valid dataset keywords are:

	info                  run dimensions (lrn_info.csv)
	scale                 scale factors (s_info.csv)
	retro-loc-capacity    retrofit capacity by location (drcp_d_act.csv)
	new-loc-capacity      new plant capacity by location (dncp_d.csv)
	retro-capacity        total retrofit capacity (drcp.csv)
	new-capacity          total new plant capacity (dncp.csv)
	demand                demand (demand.csv)
	emissions             emissions (em.csv)
	online                online status (dyo.csv)
	expansion             expansion indicator (dye.csv)
	retro-status          retrofit status (dyr.csv)
	new-status            new plant status (dyn.csv)
	retro-labels          retrofit names (retro_labels.csv)
	new-labels            new plant names (new_labels.csv)
	retro-filter          available retrofits (retro_filters.csv)
	new-filter            available new plants (new_filters.csv)
	retro-base-capacity   installed retrofit capacity (drcpb.csv)
	new-base-capacity     installed new plant capacity (dnc0.csv)
	expansion-capacity    installed expansion capacity (dec_act.csv)
	retro-tech-emissions  retrofit emissions by technology (drep1.csv)
	new-tech-emissions    new plant emissions by technology (dnep1.csv)
	retro-electricity     retrofit electricity by technology (dru.csv)
	new-electricity       new plant electricity by technology (dnu.csv)
	retro-process-co2     retrofit process CO2 (drcpe.csv)
	new-process-co2       new plant process CO2 (dncpe.csv)
	retro-fuel-co2        retrofit fuel CO2 (drfue.csv)
	new-fuel-co2          new plant fuel CO2 (dnfue.csv)
	retro-released-co2    retrofit released CO2 (drep1_.csv)
	new-released-co2      new plant released CO2 (dnep1_.csv)
	electricity           total electricity use (u.csv)
	retro-fuel            retrofit fuel use by location (dr_f_{loc}.csv)
	new-fuel              new plant fuel use by location (dn_f_{loc}.csv)
	sites                 map position of each location (no default)

The paths of the fuel use datasets must include the "{loc}" placeholder, that
is replaced by the 1-based index of each location.

Use the command "rmplot prj --save <file>" to write a project file with the
paths of all the datasets of a result folder.
	`,
}

var resultFilesGuide = &command.Command{
	Usage: "result-files",
	Short: "about the files of a result folder",
	Long: `
The files of a result folder are comma-delimited tables with a header row.
Except for the run information files, each row of a table is a period (a time
slice of the run).

The run dimensions are read from the first data row of the file
"lrn_info.csv", with the following fields:

	- n_loc   the number of locations (plants)
	- n_rtft  the number of retrofit technologies
	- n_new   the number of new plant technologies
	- n_p     the number of periods
	- n_p2    the number of subperiods (optional)

The scale factors are read from the first data row of the file "s_info.csv".
Each field is the "sf_" prefix followed by the kind of quantity: "em" for
emissions, "cap" for capacity, "cash", "heat", and "elec". Reported values are
divided by its scale factor.

In the capacity tables by location ("drcp_d_act.csv" and "dncp_d.csv") and the
status tables ("dyr.csv" and "dyn.csv"), the first column is the period index,
and each other column is a technology and location pair, labeled as
"k_<technology>_l_<location>", with 1-based indices. For example:

	t,k_1_l_1,k_2_l_1,k_1_l_2,k_2_l_2
	1,10.5,0,8.2,0
	2,10.5,0,0,8.2

In the tables of the online status ("dyo.csv") and the expansion indicator
("dye.csv"), the first column is the period index, and each other column is a
location, labeled as "l_<location>".

In the total capacity tables ("drcp.csv" and "dncp.csv") and the emissions
table ("em.csv"), the first column is the period index (usually the year), and
each other column is a technology (or an emission source). The demand table
("demand.csv") has no index column, and the demand is read from its first
column.

The names of the technologies are read from the first column of the files
"retro_labels.csv" and "new_labels.csv", after a header row. The technologies
available at each location are read from the files "retro_filters.csv" and
"new_filters.csv": each row is a location, and each column a technology, with
a true (1) or false (0) value. If a filter file does not exist, all
technologies are available at all locations.

The emissions by technology ("drep1.csv" and "dnep1.csv") and the electricity
by technology ("dru.csv" and "dnu.csv") have the same format as the total
capacity tables. So do the installed capacity tables ("drcpb.csv" and
"dnc0.csv"), in which the first new plant technology is the base technology of
the new plants, and it is not drawn.

The installed expansion capacity ("dec_act.csv") and the CO2 tables
("drcpe.csv", "drfue.csv", "drep1_.csv", and its new plant counterparts
"dncpe.csv", "dnfue.csv", "dnep1_.csv") have the period index as the first
column, and any number of other columns, that are summed by period.

The total electricity table ("u.csv") has no index column. Its first column is
the electricity used by the existing plants and retrofits, and the second
column the electricity used by the new plants.

The fuel use of each location is read from the files "dr_f_<loc>.csv"
(retrofits) and "dn_f_<loc>.csv" (new plants), with one file per location.
The first column is the period index, and the next three columns are the use
of coal, distillate fuel oil (DFO2), and natural gas. Any other column is
ignored. Fuel use is divided by the "sf_heat" scale factor.

Empty cells are read as zero.
	`,
}

var sitesGuide = &command.Command{
	Usage: "site-files",
	Short: "about the map position of the locations",
	Long: `
By default, the maps of pies place the locations in a square grid. A site file
defines the map position of each location. It is a comma-delimited file with
the following fields:

	- location  the 1-based index of the location
	- x         the horizontal position of the location
	- y         the vertical position of the location

Here is an example file:

	location,x,y
	1,-87.6,41.8
	2,-95.3,29.7
	3,-118.2,34.0

Every location of the run must be defined. In a project file, the site file is
indicated with the "sites" keyword.
	`,
}

var styleFilesGuide = &command.Command{
	Usage: "style-files",
	Short: "about chart style files",
	Long: `
The style of the charts is defined in a TOML file. Any field that is not
defined in the file keeps its default value. The fields are:

	format            the image format: "eps", "jpg", "pdf", "png", "svg",
	                  or "tif" (default "png").
	width             the width of a chart, in centimeters (default 16).
	height            the height of a chart, in centimeters (default 12).
	retro_colors      the colors of the retrofit technologies. The first
	                  color is used for the base technology.
	new_colors        the colors of the new plant technologies.
	empty_color       the color of cells without an active technology.
	online_color      the color of the online status.
	retirement_color  the color of the retirement switches.
	expansion_color   the color of the expansion switches.
	demand_color      the color of the demand line.
	gradient          the color gradient of heat maps: "iridescent",
	                  "incandescent", "rainbow", or "gray".
	pie_rows          the number of rows of a grid of pie maps (default 4).
	pie_scale         the radius of the largest pie, in map units
	                  (default 5).
	epsilon           values with an absolute value smaller than epsilon
	                  are set to zero (default 1e-8).

Colors are given in hexadecimal notation. Here is an example file:

	format = "pdf"
	width = 20
	retro_colors = ["#e7b24b", "#cec44b", "#b0d54b"]
	online_color = "#08519c"
	gradient = "incandescent"
	`,
}
