package main

// socCatalog is the compiled-in slice of the SOC occupation table used for
// fuzzy title search and similar-job lookups. Codes and titles follow the
// 2018 SOC structure. The catalog is intentionally small: it covers the
// occupations the risk tables know about plus enough neighbors per major
// group to populate similar-job listings.
var socCatalog = []Occupation{
	// Management (11)
	{Code: "11-1021", Title: "General and Operations Manager"},
	{Code: "11-2021", Title: "Marketing Manager"},
	{Code: "11-2022", Title: "Sales Manager"},
	{Code: "11-3021", Title: "Project Management Specialist"},
	{Code: "11-3031", Title: "Financial Manager"},
	{Code: "11-3121", Title: "Human Resources Manager"},
	{Code: "11-9021", Title: "Construction Manager"},
	{Code: "11-9032", Title: "Education Administrator"},
	{Code: "11-9051", Title: "Food Service Manager"},

	// Business and financial operations (13)
	{Code: "13-1071", Title: "Human Resources Specialist"},
	{Code: "13-1111", Title: "Management Analyst"},
	{Code: "13-1161", Title: "Market Research Analyst"},
	{Code: "13-2011", Title: "Accountant"},
	{Code: "13-2051", Title: "Financial Analyst"},

	// Computer and mathematical (15)
	{Code: "15-1211", Title: "Computer Systems Analyst"},
	{Code: "15-1212", Title: "Information Security Analyst"},
	{Code: "15-1232", Title: "Computer User Support Specialist"},
	{Code: "15-1244", Title: "Network and Computer Systems Administrator"},
	{Code: "15-1251", Title: "Computer Programmer"},
	{Code: "15-1252", Title: "Software Developer"},
	{Code: "15-1254", Title: "Web Developer"},
	{Code: "15-1255", Title: "Web and Digital Interface Designer"},
	{Code: "15-2041", Title: "Statistician"},
	{Code: "15-2051", Title: "Data Scientist"},

	// Architecture and engineering (17)
	{Code: "17-1011", Title: "Architect"},
	{Code: "17-2051", Title: "Civil Engineer"},
	{Code: "17-2071", Title: "Electrical Engineer"},
	{Code: "17-2141", Title: "Mechanical Engineer"},

	// Community and social service (21)
	{Code: "21-1012", Title: "School Counselor"},
	{Code: "21-1022", Title: "Healthcare Social Worker"},

	// Legal (23)
	{Code: "23-1011", Title: "Lawyer"},
	{Code: "23-2011", Title: "Paralegal"},

	// Educational instruction and library (25)
	{Code: "25-1071", Title: "Health Specialties Professor"},
	{Code: "25-2021", Title: "Elementary School Teacher"},
	{Code: "25-2031", Title: "Secondary School Teacher"},
	{Code: "25-2050", Title: "Special Education Teacher"},
	{Code: "25-9031", Title: "Instructional Coordinator"},

	// Arts, design, entertainment, media (27)
	{Code: "27-1024", Title: "Graphic Designer"},
	{Code: "27-3042", Title: "Technical Writer"},

	// Healthcare practitioners (29)
	{Code: "29-1071", Title: "Physician Assistant"},
	{Code: "29-1141", Title: "Registered Nurse"},
	{Code: "29-1171", Title: "Nurse Practitioner"},
	{Code: "29-1215", Title: "Family Medicine Physician"},
	{Code: "29-2061", Title: "Licensed Practical Nurse"},
	{Code: "29-2052", Title: "Pharmacy Technician"},

	// Healthcare support (31)
	{Code: "31-1131", Title: "Nursing Assistant"},
	{Code: "31-9092", Title: "Medical Assistant"},

	// Protective service (33)
	{Code: "33-3051", Title: "Police Officer"},
	{Code: "33-9032", Title: "Security Guard"},

	// Food preparation and serving (35)
	{Code: "35-1011", Title: "Chef"},
	{Code: "35-2014", Title: "Restaurant Cook"},
	{Code: "35-2021", Title: "Food Preparation Worker"},
	{Code: "35-3031", Title: "Waiter"},

	// Building and grounds (37)
	{Code: "37-2011", Title: "Janitor"},

	// Personal care and service (39)
	{Code: "39-5012", Title: "Hairstylist"},

	// Sales and related (41)
	{Code: "41-1011", Title: "Retail Sales Supervisor"},
	{Code: "41-2011", Title: "Cashier"},
	{Code: "41-2031", Title: "Retail Salesperson"},
	{Code: "41-3091", Title: "Sales Representative of Services"},
	{Code: "41-4012", Title: "Sales Representative"},

	// Office and administrative support (43)
	{Code: "43-1011", Title: "Office Supervisor"},
	{Code: "43-3031", Title: "Bookkeeper"},
	{Code: "43-4051", Title: "Customer Service Representative"},
	{Code: "43-4171", Title: "Receptionist"},
	{Code: "43-6014", Title: "Secretary"},
	{Code: "43-9021", Title: "Data Entry Keyer"},

	// Construction and extraction (47)
	{Code: "47-2031", Title: "Carpenter"},
	{Code: "47-2111", Title: "Electrician"},

	// Installation, maintenance, repair (49)
	{Code: "49-3023", Title: "Automotive Service Technician"},
	{Code: "49-9071", Title: "Maintenance and Repair Worker"},

	// Production (51)
	{Code: "51-2092", Title: "Assembler"},
	{Code: "51-3011", Title: "Baker"},
	{Code: "51-4041", Title: "Machinist"},
	{Code: "51-9061", Title: "Quality Control Inspector"},

	// Transportation and material moving (53)
	{Code: "53-3032", Title: "Heavy Truck Driver"},
	{Code: "53-3052", Title: "Bus Driver"},
	{Code: "53-7062", Title: "Warehouse Laborer"},
	{Code: "53-7065", Title: "Stocker and Order Filler"},
}

// seedJobTitles is the bootstrap job-title table used for autocomplete and
// the resolver's exact-match step when the database has nothing better.
// Primary titles carry the canonical BLS name; the rest are common variants.
var seedJobTitles = []JobTitleEntry{
	{Title: "Software Developer", SOCCode: "15-1252", IsPrimary: true},
	{Title: "Software Engineer", SOCCode: "15-1252", IsPrimary: false},
	{Title: "Web Developer", SOCCode: "15-1254", IsPrimary: true},
	{Title: "Registered Nurse", SOCCode: "29-1141", IsPrimary: true},
	{Title: "Nurse", SOCCode: "29-1141", IsPrimary: false},
	{Title: "Elementary School Teacher", SOCCode: "25-2021", IsPrimary: true},
	{Title: "Teacher", SOCCode: "25-2021", IsPrimary: false},
	{Title: "Lawyer", SOCCode: "23-1011", IsPrimary: true},
	{Title: "Attorney", SOCCode: "23-1011", IsPrimary: false},
	{Title: "Accountant", SOCCode: "13-2011", IsPrimary: true},
	{Title: "Architect", SOCCode: "17-1011", IsPrimary: true},
	{Title: "Physician", SOCCode: "29-1215", IsPrimary: true},
	{Title: "Doctor", SOCCode: "29-1215", IsPrimary: false},
	{Title: "Project Manager", SOCCode: "11-3021", IsPrimary: true},
	{Title: "Product Manager", SOCCode: "11-2021", IsPrimary: true},
	{Title: "Data Scientist", SOCCode: "15-2051", IsPrimary: true},
	{Title: "Data Analyst", SOCCode: "15-2041", IsPrimary: true},
	{Title: "Retail Salesperson", SOCCode: "41-2031", IsPrimary: true},
	{Title: "Cashier", SOCCode: "41-2011", IsPrimary: true},
	{Title: "Customer Service Representative", SOCCode: "43-4051", IsPrimary: true},
	{Title: "Truck Driver", SOCCode: "53-3032", IsPrimary: false},
	{Title: "Heavy Truck Driver", SOCCode: "53-3032", IsPrimary: true},
	{Title: "Restaurant Cook", SOCCode: "35-2014", IsPrimary: true},
	{Title: "Cook", SOCCode: "35-2014", IsPrimary: false},
	{Title: "Chef", SOCCode: "35-1011", IsPrimary: true},
	{Title: "Graphic Designer", SOCCode: "27-1024", IsPrimary: true},
	{Title: "Financial Analyst", SOCCode: "13-2051", IsPrimary: true},
	{Title: "Marketing Manager", SOCCode: "11-2021", IsPrimary: true},
	{Title: "Management Analyst", SOCCode: "13-1111", IsPrimary: true},
	{Title: "Business Analyst", SOCCode: "13-1111", IsPrimary: false},
	{Title: "Electrician", SOCCode: "47-2111", IsPrimary: true},
	{Title: "Machinist", SOCCode: "51-4041", IsPrimary: true},
	{Title: "Secretary", SOCCode: "43-6014", IsPrimary: true},
	{Title: "Receptionist", SOCCode: "43-4171", IsPrimary: true},
}
